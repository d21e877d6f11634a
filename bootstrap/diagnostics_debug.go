//go:build !release

package bootstrap

const enableValidationLayers = true
