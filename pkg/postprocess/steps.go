// Package postprocess names the post-processing steps an importer can run
// on a scene after loading it. The steps themselves are implemented by
// the importer; this package only carries the flags and their meaning.
package postprocess

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// Step is a set of post-processing flags. Values match the native
// aiPostProcessSteps bits.
type Step uint32

// Individual steps.
const (
	CalcTangentSpace         Step = 0x1
	JoinIdenticalVertices    Step = 0x2
	MakeLeftHanded           Step = 0x4
	Triangulate              Step = 0x8
	RemoveComponent          Step = 0x10
	GenNormals               Step = 0x20
	GenSmoothNormals         Step = 0x40
	SplitLargeMeshes         Step = 0x80
	PreTransformVertices     Step = 0x100
	LimitBoneWeights         Step = 0x200
	ValidateDataStructure    Step = 0x400
	ImproveCacheLocality     Step = 0x800
	RemoveRedundantMaterials Step = 0x1000
	FixInfacingNormals       Step = 0x2000
	SortByPType              Step = 0x8000
	FindDegenerates          Step = 0x10000
	FindInvalidData          Step = 0x20000
	GenUVCoords              Step = 0x40000
	TransformUVCoords        Step = 0x80000
	FindInstances            Step = 0x100000
	OptimizeMeshes           Step = 0x200000
	OptimizeGraph            Step = 0x400000
	FlipUVs                  Step = 0x800000
	FlipWindingOrder         Step = 0x1000000
	SplitByBoneCount         Step = 0x2000000
	Debone                   Step = 0x4000000
)

// Shortcuts and presets.
const (
	// ConvertToLeftHanded produces Direct3D conventions: left-handed
	// geometry, upper-left UV origin and clockwise winding.
	ConvertToLeftHanded = MakeLeftHanded | FlipUVs | FlipWindingOrder

	// TargetRealtimeFast favours import speed.
	TargetRealtimeFast = CalcTangentSpace | GenNormals | JoinIdenticalVertices |
		Triangulate | GenUVCoords | SortByPType

	// TargetRealtimeQuality adds optimizations useful for editors.
	TargetRealtimeQuality = CalcTangentSpace | GenSmoothNormals | JoinIdenticalVertices |
		ImproveCacheLocality | LimitBoneWeights | RemoveRedundantMaterials |
		SplitLargeMeshes | Triangulate | GenUVCoords | SortByPType |
		FindDegenerates | FindInvalidData

	// TargetRealtimeMaxQuality enables almost every optimization.
	TargetRealtimeMaxQuality = TargetRealtimeQuality | FindInstances |
		ValidateDataStructure | OptimizeMeshes | Debone
)

// Step errors.
var (
	ErrUnknownStep      = errors.New("unknown post-processing step")
	ErrConflictingSteps = errors.New("conflicting post-processing steps")
)

type stepInfo struct {
	step        Step
	name        string
	description string
}

// steps lists every single-bit step in ascending bit order.
var steps = []stepInfo{
	{CalcTangentSpace, "CalcTangentSpace", "Calculates tangents and bitangents for meshes with normals and UV coordinates."},
	{JoinIdenticalVertices, "JoinIdenticalVertices", "Shares identical vertices between faces so meshes can be drawn indexed."},
	{MakeLeftHanded, "MakeLeftHanded", "Converts geometry to a left-handed coordinate system."},
	{Triangulate, "Triangulate", "Splits polygons with more than three vertices into triangles."},
	{RemoveComponent, "RemoveComponent", "Removes configured vertex or scene components such as colors or lights."},
	{GenNormals, "GenNormals", "Generates flat per-face normals for meshes without normals."},
	{GenSmoothNormals, "GenSmoothNormals", "Generates smooth per-vertex normals for meshes without normals."},
	{SplitLargeMeshes, "SplitLargeMeshes", "Splits meshes above the configured vertex or triangle limit."},
	{PreTransformVertices, "PreTransformVertices", "Bakes the node hierarchy into vertices and drops animations."},
	{LimitBoneWeights, "LimitBoneWeights", "Limits the number of bones affecting a single vertex."},
	{ValidateDataStructure, "ValidateDataStructure", "Checks the imported data structure for consistency."},
	{ImproveCacheLocality, "ImproveCacheLocality", "Reorders triangles for better vertex cache locality."},
	{RemoveRedundantMaterials, "RemoveRedundantMaterials", "Removes unreferenced materials and merges duplicates."},
	{FixInfacingNormals, "FixInfacingNormals", "Inverts normals that point into the mesh."},
	{SortByPType, "SortByPType", "Splits meshes with mixed primitive types into single-type submeshes."},
	{FindDegenerates, "FindDegenerates", "Converts degenerate primitives to points or lines."},
	{FindInvalidData, "FindInvalidData", "Removes or fixes invalid data such as zero normals or bad UVs."},
	{GenUVCoords, "GenUVCoords", "Converts non-UV mappings (sphere, cylinder, box) to UV channels."},
	{TransformUVCoords, "TransformUVCoords", "Applies per-texture UV transformations to the UV channels."},
	{FindInstances, "FindInstances", "Replaces duplicate meshes with references to a single mesh."},
	{OptimizeMeshes, "OptimizeMeshes", "Joins small meshes to reduce draw calls."},
	{OptimizeGraph, "OptimizeGraph", "Collapses nodes that carry no animation, bones or lights."},
	{FlipUVs, "FlipUVs", "Flips the V texture coordinate so the origin is the upper-left corner."},
	{FlipWindingOrder, "FlipWindingOrder", "Changes face winding from counter-clockwise to clockwise."},
	{SplitByBoneCount, "SplitByBoneCount", "Splits meshes so each submesh stays under the bone limit."},
	{Debone, "Debone", "Removes bones that can be dropped without visible loss."},
}

// presets maps preset names accepted by Parse.
var presets = map[string]Step{
	"converttolefthanded":      ConvertToLeftHanded,
	"targetrealtimefast":       TargetRealtimeFast,
	"targetrealtimequality":    TargetRealtimeQuality,
	"targetrealtimemaxquality": TargetRealtimeMaxQuality,
}

// conflicts lists step pairs the importer refuses to run together.
var conflicts = [][2]Step{
	{GenNormals, GenSmoothNormals},
	{OptimizeGraph, PreTransformVertices},
}

// Has reports whether every bit of other is set in s.
func (s Step) Has(other Step) bool {
	return s&other == other
}

// List returns the individual steps set in s, in bit order. Unknown bits
// are ignored.
func (s Step) List() []Step {
	out := make([]Step, 0, bits.OnesCount32(uint32(s)))
	for _, info := range steps {
		if s&info.step != 0 {
			out = append(out, info.step)
		}
	}
	return out
}

// String joins step names with "|". Unknown bits are rendered in hex.
func (s Step) String() string {
	if s == 0 {
		return "None"
	}
	var names []string
	known := Step(0)
	for _, info := range steps {
		if s&info.step != 0 {
			names = append(names, info.name)
			known |= info.step
		}
	}
	if rest := s &^ known; rest != 0 {
		names = append(names, fmt.Sprintf("0x%x", uint32(rest)))
	}
	return strings.Join(names, "|")
}

// Validate rejects unknown bits and step combinations the importer does
// not accept.
func (s Step) Validate() error {
	var errs []error
	if rest := s &^ All(); rest != 0 {
		errs = append(errs, fmt.Errorf("%w: bits 0x%x", ErrUnknownStep, uint32(rest)))
	}
	for _, c := range conflicts {
		if s.Has(c[0] | c[1]) {
			errs = append(errs, fmt.Errorf("%w: %s and %s", ErrConflictingSteps, c[0], c[1]))
		}
	}
	return errors.Join(errs...)
}

// All returns every known step.
func All() Step {
	var s Step
	for _, info := range steps {
		s |= info.step
	}
	return s
}

// Describe returns the documented effect of a single step.
func Describe(s Step) string {
	for _, info := range steps {
		if info.step == s {
			return info.description
		}
	}
	return ""
}

// Parse combines step and preset names, case-insensitively.
func Parse(names []string) (Step, error) {
	var s Step
	for _, name := range names {
		step, err := parseOne(name)
		if err != nil {
			return 0, err
		}
		s |= step
	}
	return s, nil
}

func parseOne(name string) (Step, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.TrimPrefix(key, "preset")
	key = strings.ReplaceAll(key, "_", "")
	if p, ok := presets[key]; ok {
		return p, nil
	}
	for _, info := range steps {
		if strings.ToLower(info.name) == key {
			return info.step, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStep, name)
}
