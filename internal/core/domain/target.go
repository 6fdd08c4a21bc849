// Package domain contains the core types of the rig build pipeline.
package domain

// Gender selects which animation-library variant a target consumes.
type Gender string

const (
	// GenderMale is the default library variant.
	GenderMale Gender = "M"
	// GenderFemale is the non-default variant; unresolved female clips fall
	// back to the male variant.
	GenderFemale Gender = "F"
)

// Valid reports whether g is one of the two supported variants.
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// SourceFormat is the closed set of supported source model formats.
// The format is fixed once at discovery time from the file extension.
type SourceFormat string

const (
	// FormatFBX is an Autodesk FBX source model.
	FormatFBX SourceFormat = "fbx"
	// FormatGLB is a binary glTF source model.
	FormatGLB SourceFormat = "glb"
)

// FormatForExtension maps a lower-cased file extension (without the dot) to
// its source format. Unknown extensions are not discoverable as targets.
func FormatForExtension(ext string) (SourceFormat, bool) {
	switch ext {
	case "fbx":
		return FormatFBX, true
	case "glb":
		return FormatGLB, true
	default:
		return "", false
	}
}

// Config is the per-target build configuration. It is plain comparable data;
// staleness evaluation relies on struct equality.
type Config struct {
	Gender        Gender  `json:"gender" yaml:"gender"`
	ExtraArmAngle float64 `json:"extra_arm_angle" yaml:"extra_arm_angle"`
}

// Target identifies one character to build. Targets are recreated from
// directory discovery on every run; only the name persists across runs as
// the manifest key.
type Target struct {
	Name       string
	SourceFile string
	SourcePath string
	Format     SourceFormat
	Config     Config
}
