//go:build release

package bootstrap

const enableValidationLayers = false
