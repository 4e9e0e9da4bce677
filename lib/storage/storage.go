package storage

// Serializable values are stored with their own encoding instead of JSON.
type Serializable interface {
	Serialize() ([]byte, error)
}
