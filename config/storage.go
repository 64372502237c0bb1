package config

// StorageRoot is the directory behind the public disk, served at /storage.
func StorageRoot() string {
	return getEnv("STORAGE_ROOT", "storage/app/public")
}
