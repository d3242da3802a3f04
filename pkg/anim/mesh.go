package anim

// MeshAnim describes vertex-based animation for one mesh or a group of
// meshes. Name need not be unique: every mesh carrying that name follows
// the channel.
type MeshAnim struct {
	Name string
	Keys []MeshKey
}

// ActiveVariant returns the anim-mesh index selected at time t.
func (m *MeshAnim) ActiveVariant(t float64) (uint32, error) {
	return Hold(m.Keys, t)
}
