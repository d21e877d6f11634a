package bootstrap

// CheckLayerSupport reports whether every name in requested has an exact,
// case-sensitive match in available. An empty request is always supported.
func CheckLayerSupport(requested, available []string) bool {
	return len(missingNames(requested, available)) == 0
}

func missingNames(requested, available []string) []string {
	var missing []string
	for _, name := range requested {
		found := false
		for _, candidate := range available {
			if candidate == name {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, name)
		}
	}
	return missing
}
