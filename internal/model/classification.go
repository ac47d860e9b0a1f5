package model

// Classification is the final outcome of one file event. Category is always
// either a member of the CategorySet the pipeline was built with or the
// configured fallback.
type Classification struct {
	// File is the base name of the classified file.
	File string
	// Category is the resolved category name.
	Category string
	// Fallback is true when the pipeline could not produce a valid
	// classification and substituted the fallback category.
	Fallback bool
}
