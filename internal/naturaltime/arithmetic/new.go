package arithmetic

// Key is the source identity the host uses to attribute tokens produced
// by this plugin.
const Key = "relativeTime"

// Plugin recognizes GNU date style relative expressions such as
// "15 years -12 months 2 fortnights ago" and applies the resulting deltas
// to a base timestamp.
type Plugin struct {
	vocab *Vocabulary
}

// New creates a plugin with the default English vocabulary.
func New() *Plugin {
	return NewWithVocabulary(DefaultVocabulary())
}

// NewWithVocabulary creates a plugin owning the given vocabulary. Used for
// localization: callers seed (or start from an empty) vocabulary before the
// first Tokenize call.
func NewWithVocabulary(v *Vocabulary) *Plugin {
	return &Plugin{vocab: v}
}

// Key implements naturaltime.TokenPlugin.
func (p *Plugin) Key() string {
	return Key
}

// Vocabulary exposes the plugin's owned vocabulary for localization.
func (p *Plugin) Vocabulary() *Vocabulary {
	return p.vocab
}
