// Package assets is the asset provider for the game.
// Sprites and sound definitions live in a YAML catalog embedded in the binary;
// a custom catalog can replace it. Any missing or malformed asset is reported
// as an error so startup can abort.
package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/birdshot/internal/core"
)

//go:embed data/catalog.yaml
var defaultCatalogYAML []byte

// ErrMissing is wrapped when a requested asset is not in the catalog.
var ErrMissing = errors.New("asset not found")

// SoundID identifies a sound definition.
type SoundID string

// Sounds used by the game.
const (
	SoundGameOver SoundID = "gameover"
	SoundHit      SoundID = "hit"
)

// Note is a single tone of a sound. A zero frequency is a rest.
type Note struct {
	Freq     float64       `yaml:"freq"`
	Duration time.Duration `yaml:"duration"`
}

// Sound is a playable sequence of notes.
type Sound struct {
	ID    SoundID
	Notes []Note
}

// Duration returns the total length of the sound.
func (s Sound) Duration() time.Duration {
	var d time.Duration
	for _, n := range s.Notes {
		d += n.Duration
	}
	return d
}

type spriteDef struct {
	Color string   `yaml:"color"`
	Rows  []string `yaml:"rows"`
}

type soundDef struct {
	Notes []Note `yaml:"notes"`
}

type catalogFile struct {
	Avatar     map[int]spriteDef    `yaml:"avatar"`
	Beam       spriteDef            `yaml:"beam"`
	Explosion  spriteDef            `yaml:"explosion"`
	Background spriteDef            `yaml:"background"`
	Score      spriteDef            `yaml:"score"`
	Sounds     map[SoundID]soundDef `yaml:"sounds"`
}

// Catalog holds every sprite and sound the game can ask for.
type Catalog struct {
	avatars    map[int]core.Sprite
	beam       core.Sprite
	explosion  core.Sprite
	background core.Sprite
	scoreColor core.Color
	sounds     map[SoundID]Sound
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(defaultCatalogYAML)
}

// Open loads a catalog from a YAML file, or the embedded one when path is empty.
func Open(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: failed to read catalog %s: %w", path, err)
	}
	cat, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("assets: %s: %w", path, err)
	}
	return cat, nil
}

// Parse decodes and validates a catalog.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	cat := &Catalog{
		avatars: make(map[int]core.Sprite, len(f.Avatar)),
		sounds:  make(map[SoundID]Sound, len(f.Sounds)),
	}

	for pose, def := range f.Avatar {
		sp, err := def.sprite(fmt.Sprintf("avatar %d", pose))
		if err != nil {
			return nil, err
		}
		cat.avatars[pose] = sp
	}

	var err error
	if cat.beam, err = f.Beam.sprite("beam"); err != nil {
		return nil, err
	}
	if cat.explosion, err = f.Explosion.sprite("explosion"); err != nil {
		return nil, err
	}
	if cat.background, err = f.Background.sprite("background"); err != nil {
		return nil, err
	}

	c, ok := core.ParseColor(f.Score.Color)
	if !ok {
		return nil, fmt.Errorf("score: unknown color %q", f.Score.Color)
	}
	cat.scoreColor = c

	for id, def := range f.Sounds {
		if len(def.Notes) == 0 {
			return nil, fmt.Errorf("sound %q: no notes", id)
		}
		for i, n := range def.Notes {
			if n.Freq < 0 || n.Duration <= 0 {
				return nil, fmt.Errorf("sound %q: note %d needs freq >= 0 and a positive duration", id, i)
			}
		}
		cat.sounds[id] = Sound{ID: id, Notes: def.Notes}
	}

	return cat, nil
}

func (d spriteDef) sprite(name string) (core.Sprite, error) {
	if len(d.Rows) == 0 {
		return core.Sprite{}, fmt.Errorf("%s: %w", name, ErrMissing)
	}
	c, ok := core.ParseColor(d.Color)
	if !ok {
		return core.Sprite{}, fmt.Errorf("%s: unknown color %q", name, d.Color)
	}
	return core.NewSprite(d.Rows, c), nil
}

// Avatar returns the bird sprite for a pose number, drawn facing left.
func (c *Catalog) Avatar(pose int) (core.Sprite, error) {
	sp, ok := c.avatars[pose]
	if !ok {
		return core.Sprite{}, fmt.Errorf("assets: avatar pose %d: %w", pose, ErrMissing)
	}
	return sp, nil
}

// Poses returns the available avatar pose numbers in ascending order.
func (c *Catalog) Poses() []int {
	poses := make([]int, 0, len(c.avatars))
	for p := range c.avatars {
		poses = append(poses, p)
	}
	sort.Ints(poses)
	return poses
}

// Beam returns the beam sprite pointing right.
func (c *Catalog) Beam() core.Sprite { return c.beam }

// Explosion returns the first explosion frame.
func (c *Catalog) Explosion() core.Sprite { return c.explosion }

// Background returns the tile repeated behind the arena.
func (c *Catalog) Background() core.Sprite { return c.background }

// ScoreColor returns the color of the score label.
func (c *Catalog) ScoreColor() core.Color { return c.scoreColor }

// Sound returns a sound definition by id.
func (c *Catalog) Sound(id SoundID) (Sound, error) {
	s, ok := c.sounds[id]
	if !ok {
		return Sound{}, fmt.Errorf("assets: sound %q: %w", id, ErrMissing)
	}
	return s, nil
}
