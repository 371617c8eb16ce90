package chainext

// Manifest is the YAML-serializable summary of a validated extension,
// the hand-off artifact consumed by dispatch code generators. Method
// order matches declaration order.
type Manifest struct {
	Interface string           `yaml:"interface"`
	Methods   []ManifestMethod `yaml:"methods"`
}

// ManifestMethod is one method entry of a Manifest.
type ManifestMethod struct {
	Name   string   `yaml:"name"`
	ID     uint32   `yaml:"id"`
	Params []string `yaml:"params,omitempty"`
}

// Manifest builds the manifest for a validated extension.
func (e *Extension) Manifest() Manifest {
	m := Manifest{Interface: e.Name()}
	for _, method := range e.Methods {
		entry := ManifestMethod{
			Name: method.Name(),
			ID:   uint32(method.ID()),
		}
		for _, p := range method.Sig().Params {
			entry.Params = append(entry.Params, p.Name)
		}
		m.Methods = append(m.Methods, entry)
	}
	return m
}
