package ports

// Computer is the capability shared by every machine variant.
// Code performs the variant's single side effect, or reports why it cannot.
type Computer interface {
	Code() error
}
