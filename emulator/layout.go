package emulator

import (
	"strconv"
	"strings"

	"github.com/sirkon/errors"
	"gopkg.in/yaml.v3"
)

type HexInt uint64

func (h *HexInt) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return errors.Newf("expected scalar for hex int at line %d", value.Line)
	}

	s := strings.TrimSpace(value.Value)
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	s = strings.ReplaceAll(s, "_", "")

	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return errors.Wrap(err, "parse hex int").Str("value", value.Value)
	}

	*h = HexInt(v)
	return nil
}

// Layout is where the game keeps the values a snapshot is built from. The
// addresses and sentinels were found by watching memory of an NTSC 1.02 image
// and are not documented anywhere; they may misclassify transient engine
// states, so treat decoded status as a best guess.
type Layout struct {
	Version      string `yaml:"version"`
	LogicalBase  HexInt `yaml:"logicalBase"`
	PhysicalBase HexInt `yaml:"physicalBase"`

	Stage  HexInt `yaml:"stage"`
	InGame HexInt `yaml:"inGame"`
	Paused HexInt `yaml:"paused"`
	// Timer is optional, zero disables the read.
	Timer HexInt `yaml:"timer"`

	PausedSentinel HexInt `yaml:"pausedSentinel"`
	EndedSentinel  HexInt `yaml:"endedSentinel"`
}

// DefaultLayout is layout v1.
func DefaultLayout() Layout {
	return Layout{
		Version:        "v1",
		LogicalBase:    LogicalBase,
		PhysicalBase:   PhysicalBase,
		Stage:          0x8043208B,
		InGame:         0x8046B6A0,
		Paused:         0x8046B6A1,
		Timer:          0x8046B6C8,
		PausedSentinel: 0x10,
		EndedSentinel:  0x08,
	}
}

// LayoutOverride is the layout section of a config file. Only keys present in
// the file are set, so an explicit zero (timer: 0) is kept apart from an absent
// key.
type LayoutOverride struct {
	Version      *string `yaml:"version"`
	LogicalBase  *HexInt `yaml:"logicalBase"`
	PhysicalBase *HexInt `yaml:"physicalBase"`

	Stage  *HexInt `yaml:"stage"`
	InGame *HexInt `yaml:"inGame"`
	Paused *HexInt `yaml:"paused"`
	Timer  *HexInt `yaml:"timer"`

	PausedSentinel *HexInt `yaml:"pausedSentinel"`
	EndedSentinel  *HexInt `yaml:"endedSentinel"`
}

// Merge returns l with every field set in o applied on top.
func (l Layout) Merge(o LayoutOverride) Layout {
	if o.Version != nil {
		l.Version = *o.Version
	}
	set := func(dst *HexInt, v *HexInt) {
		if v != nil {
			*dst = *v
		}
	}
	set(&l.LogicalBase, o.LogicalBase)
	set(&l.PhysicalBase, o.PhysicalBase)
	set(&l.Stage, o.Stage)
	set(&l.InGame, o.InGame)
	set(&l.Paused, o.Paused)
	set(&l.Timer, o.Timer)
	set(&l.PausedSentinel, o.PausedSentinel)
	set(&l.EndedSentinel, o.EndedSentinel)
	return l
}

// Validate checks every address lies in the console RAM window.
func (l Layout) Validate() error {
	check := func(name string, a HexInt, optional bool) error {
		if optional && a == 0 {
			return nil
		}
		if a < l.LogicalBase {
			return errors.New("address below logical base").
				Str("layout", l.Version).
				Str("field", name).
				Uint64("address", uint64(a)).
				Uint64("logical-base", uint64(l.LogicalBase))
		}
		return nil
	}
	if err := check("stage", l.Stage, false); err != nil {
		return err
	}
	if err := check("inGame", l.InGame, false); err != nil {
		return err
	}
	if err := check("paused", l.Paused, false); err != nil {
		return err
	}
	if err := check("timer", l.Timer, true); err != nil {
		return err
	}
	if l.PausedSentinel > 0xFF || l.EndedSentinel > 0xFF {
		return errors.New("sentinels must fit in a byte").Str("layout", l.Version)
	}
	if l.PausedSentinel == l.EndedSentinel {
		return errors.New("paused and ended sentinels must differ").Str("layout", l.Version)
	}
	return nil
}

// Translate maps a logical address to a host offset using the layout's bases.
func (l Layout) Translate(addr HexInt) PhysicalOffset {
	return PhysicalOffset(uint64(addr) - uint64(l.LogicalBase) + uint64(l.PhysicalBase))
}
