package config

// AnnotationConfig holds settings for annotating the recorded game.
type AnnotationConfig struct {
	AddEngineComments bool // Add score and node count after engine moves
	AddFENComment     bool // Add the final position as a comment
	AddPlyCount       bool // Add a PlyCount tag
}

// NewAnnotationConfig creates an AnnotationConfig with default values.
// All boolean fields default to false (Go zero value).
func NewAnnotationConfig() *AnnotationConfig {
	return &AnnotationConfig{}
}
