package scenedoc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/assetcore/pkg/anim"
	"github.com/Faultbox/assetcore/pkg/material"
	"github.com/Faultbox/assetcore/pkg/math"
	"github.com/Faultbox/assetcore/pkg/postprocess"
	"github.com/Faultbox/assetcore/pkg/scene"
)

// Scene document errors.
var (
	ErrMissingRoot   = errors.New("scene document has no root node")
	ErrMeshIndex     = errors.New("mesh index out of range")
	ErrMaterialIndex = errors.New("material index out of range")
)

// Decode reads a document without converting it. Unknown fields are
// rejected.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrMissingRoot
		}
		return nil, fmt.Errorf("decoding scene document: %w", err)
	}
	return &doc, nil
}

// Parse decodes a document and builds the scene it describes.
func Parse(data []byte) (*scene.Scene, error) {
	doc, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return doc.Scene()
}

// ParseFile reads and parses a document from disk.
func ParseFile(path string) (*scene.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene document: %w", err)
	}
	return Parse(data)
}

// Scene converts the document. Animations are not validated; use
// anim.Validate for that.
func (d *Document) Scene() (*scene.Scene, error) {
	if d.Root == nil {
		return nil, ErrMissingRoot
	}

	flags, err := postprocess.Parse(d.PostProcess)
	if err != nil {
		return nil, err
	}
	if err := flags.Validate(); err != nil {
		return nil, err
	}

	s := &scene.Scene{Flags: flags}

	for i := range d.Materials {
		m, err := d.Materials[i].material()
		if err != nil {
			return nil, fmt.Errorf("material %d: %w", i, err)
		}
		s.Materials = append(s.Materials, m)
	}

	for i := range d.Meshes {
		md := &d.Meshes[i]
		if md.Material < 0 || (len(s.Materials) > 0 && md.Material >= len(s.Materials)) {
			return nil, fmt.Errorf("mesh %q: %w: %d", md.Name, ErrMaterialIndex, md.Material)
		}
		s.Meshes = append(s.Meshes, md.mesh())
	}

	root, err := d.Root.node(len(s.Meshes))
	if err != nil {
		return nil, err
	}
	s.Root = root

	for i := range d.Animations {
		s.Animations = append(s.Animations, d.Animations[i].animation())
	}

	return s, nil
}

func (n *NodeDoc) node(meshCount int) (*scene.Node, error) {
	rest := anim.IdentityTransform()
	if n.Position != nil {
		rest.Position = vec3(*n.Position)
	}
	if n.Rotation != nil {
		rest.Rotation = quat(*n.Rotation)
	}
	if n.Scaling != nil {
		rest.Scaling = vec3(*n.Scaling)
	}

	for _, idx := range n.Meshes {
		if idx < 0 || idx >= meshCount {
			return nil, fmt.Errorf("node %q: %w: %d", n.Name, ErrMeshIndex, idx)
		}
	}

	out := &scene.Node{Name: n.Name, Rest: rest, Meshes: n.Meshes}
	for _, c := range n.Children {
		if c == nil {
			continue
		}
		child, err := c.node(meshCount)
		if err != nil {
			return nil, err
		}
		out.Children = append(out.Children, child)
	}
	return out, nil
}

func (m *MeshDoc) mesh() *scene.Mesh {
	out := &scene.Mesh{
		Name:          m.Name,
		MaterialIndex: m.Material,
		Vertices:      vec3s(m.Vertices),
		Normals:       vec3s(m.Normals),
	}
	for _, am := range m.AnimMeshes {
		out.AnimMeshes = append(out.AnimMeshes, scene.AnimMesh{
			Name:     am.Name,
			Vertices: vec3s(am.Vertices),
			Normals:  vec3s(am.Normals),
			Weight:   am.Weight,
		})
	}
	return out
}

func (m *MaterialDoc) material() (*material.Material, error) {
	out := &material.Material{}
	if m.Name != "" {
		out.Properties = append(out.Properties,
			material.NewStringProperty(material.KeyName, material.TextureNone, 0, m.Name))
	}
	for _, tex := range m.Textures {
		tt, err := material.ParseTextureType(tex.Type)
		if err != nil {
			return nil, fmt.Errorf("texture %q: %w", tex.Path, err)
		}
		out.Properties = append(out.Properties,
			material.NewStringProperty(material.KeyTextureBase, tt, tex.Index, tex.Path))
	}
	return out, nil
}

func (a *AnimationDoc) animation() *anim.Animation {
	out := &anim.Animation{
		Name:           a.Name,
		Duration:       a.Duration,
		TicksPerSecond: a.TicksPerSecond,
	}

	for _, ch := range a.Channels {
		na := &anim.NodeAnim{
			Name:      ch.Node,
			PreState:  ch.Pre,
			PostState: ch.Post,
		}
		for _, k := range ch.Position {
			na.PositionKeys = append(na.PositionKeys, anim.VectorKey{Time: k.Time, Value: vec3(k.Value)})
		}
		for _, k := range ch.Rotation {
			na.RotationKeys = append(na.RotationKeys, anim.QuatKey{Time: k.Time, Value: quat(k.Value)})
		}
		for _, k := range ch.Scaling {
			na.ScalingKeys = append(na.ScalingKeys, anim.VectorKey{Time: k.Time, Value: vec3(k.Value)})
		}
		out.Channels = append(out.Channels, na)
	}

	for _, mc := range a.MeshChannels {
		ma := &anim.MeshAnim{Name: mc.Mesh}
		for _, k := range mc.Keys {
			ma.Keys = append(ma.Keys, anim.MeshKey{Time: k.Time, Value: k.Variant})
		}
		out.MeshChannels = append(out.MeshChannels, ma)
	}

	return out
}

func vec3(v [3]float32) math.Vec3 {
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}

func quat(v [4]float32) math.Quat {
	return math.Quat{X: v[0], Y: v[1], Z: v[2], W: v[3]}
}

func vec3s(vs [][3]float32) []math.Vec3 {
	if len(vs) == 0 {
		return nil
	}
	out := make([]math.Vec3, len(vs))
	for i, v := range vs {
		out[i] = vec3(v)
	}
	return out
}
