package settings

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

// ErrInvalidValue is returned when a staged numeric field is negative or not a number.
var ErrInvalidValue = errors.New("settings: invalid value")

// Values is one snapshot of the render settings. The frame loop reads exactly one Values per frame.
type Values struct {
	// AnimSpeed multiplies simulated time for the blobs (not the camera).
	AnimSpeed float32
	// BlobFactor is the smooth-union radius the shader merges nearby blobs with.
	BlobFactor  float32
	Shadow      bool
	Diffuse     bool
	NormalsOnly bool
}

// Defaults are the values the control panel starts with.
func Defaults() Values {
	return Values{
		AnimSpeed:   1,
		BlobFactor:  0.5,
		Shadow:      true,
		Diffuse:     true,
		NormalsOnly: false,
	}
}

// RenderSettings holds the active settings plus the numeric fields the user is editing.
//
// Numeric fields behave like text boxes with an apply button: StageAnimSpeed and
// StageBlobFactor only record the edit, Commit makes staged edits active. The three toggles
// behave like checkboxes and take effect immediately.
type RenderSettings struct {
	active Values

	stagedAnim  *float32
	stagedBlend *float32
}

// New returns settings starting from v.
func New(v Values) *RenderSettings {
	return &RenderSettings{active: v}
}

// Snapshot returns a copy of the active values.
func (r *RenderSettings) Snapshot() Values {
	return r.active
}

// StageAnimSpeed records a new animation speed multiplier to apply on Commit.
func (r *RenderSettings) StageAnimSpeed(v float32) error {
	if err := check("anim speed", v); err != nil {
		return err
	}
	r.stagedAnim = &v
	return nil
}

// StageBlobFactor records a new blob merge factor to apply on Commit.
func (r *RenderSettings) StageBlobFactor(v float32) error {
	if err := check("blob factor", v); err != nil {
		return err
	}
	r.stagedBlend = &v
	return nil
}

// Pending reports whether there are staged edits that Commit would apply.
func (r *RenderSettings) Pending() bool {
	return r.stagedAnim != nil || r.stagedBlend != nil
}

// Commit applies staged numeric edits and returns the new active values.
func (r *RenderSettings) Commit() Values {
	if r.stagedAnim != nil {
		r.active.AnimSpeed = *r.stagedAnim
		r.stagedAnim = nil
	}
	if r.stagedBlend != nil {
		r.active.BlobFactor = *r.stagedBlend
		r.stagedBlend = nil
	}
	return r.active
}

// Discard drops staged edits.
func (r *RenderSettings) Discard() {
	r.stagedAnim = nil
	r.stagedBlend = nil
}

func (r *RenderSettings) SetShadow(on bool) {
	r.active.Shadow = on
}

func (r *RenderSettings) SetDiffuse(on bool) {
	r.active.Diffuse = on
}

func (r *RenderSettings) SetNormalsOnly(on bool) {
	r.active.NormalsOnly = on
}

func check(name string, v float32) error {
	if math32.IsNaN(v) || math32.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("%w: %s %v", ErrInvalidValue, name, v)
	}
	return nil
}

// Flag converts a toggle to the 0/1 float the shader expects.
func Flag(on bool) float32 {
	if on {
		return 1
	}
	return 0
}
