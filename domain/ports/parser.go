package ports

// ProfileParser defines the interface for parsing raw profile documents
// into a decoded form the application layer can compile. The concrete
// document type lives with the application to keep this layer free of
// format concerns.
type ProfileParser interface {
	// Parse unmarshals raw profile bytes into the target value.
	Parse(data []byte, target any) error
}
