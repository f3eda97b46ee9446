package stage

import (
	"Ballast/internal/calc/geometry"
	"Ballast/internal/calc/loads"
	"Ballast/internal/calc/member"
	"Ballast/internal/calc/slab"
	"errors"
	"fmt"
)

type Roof struct {
	Done bool           `json:"done" yaml:"done"`
	B1   member.Section `json:"b1" yaml:"b1"`
	G1   member.Section `json:"g1" yaml:"g1"`
	G2   member.Section `json:"g2" yaml:"g2"`
}

// Level is one below-grade storey. Index 0 is the topmost level.
type Level struct {
	Done   bool           `json:"done" yaml:"done"`
	B1     member.Section `json:"b1" yaml:"b1"`
	G1     member.Section `json:"g1" yaml:"g1"`
	G2     member.Section `json:"g2" yaml:"g2"`
	Column member.Section `json:"column" yaml:"column"`
}

type Input struct {
	Geometry  geometry.Geometry `json:"geometry" yaml:"geometry"`
	Materials loads.Materials   `json:"materials" yaml:"materials"`
	Layers    loads.Layers      `json:"layers" yaml:"layers"`
	Roof      Roof              `json:"roof" yaml:"roof"`
	Levels    []Level           `json:"levels" yaml:"levels"`
}

type Subtotal struct {
	Group string  `json:"group"`
	Value float64 `json:"value_kn"`
}

type Outcome struct {
	TotalWeight float64    `json:"total_weight_kn"`
	Ledger      Ledger     `json:"ledger"`
	Subtotals   []Subtotal `json:"subtotals"`
	Warnings    []string   `json:"warnings,omitempty"`
}

// LevelName is the storey label used for ledger groups: B1F is directly below the roof.
func LevelName(i int) string {
	return fmt.Sprintf("B%dF", i+1)
}

// ClassOf is the load class of level i out of n.
func ClassOf(i, n int) loads.Class {
	if i == n-1 {
		return loads.ClassBottom
	}
	return loads.ClassTypical
}

func Validate(in Input) error {
	if err := in.Geometry.Validate(); err != nil {
		return err
	}
	if err := loads.Validate(loads.Input{Materials: in.Materials, Layers: in.Layers}); err != nil {
		return err
	}
	if len(in.Levels) != in.Geometry.NumLevels() {
		return geometry.NewConfigError("levels", "%d levels given for %d level heights", len(in.Levels), in.Geometry.NumLevels())
	}
	var errs []error
	section := func(field string, s member.Section) {
		if !geometry.Finite(s.WidthMM) || !geometry.Finite(s.DepthMM) || s.WidthMM <= 0 || s.DepthMM <= 0 {
			errs = append(errs, geometry.NewConfigError(field, "width and depth must be finite and positive"))
		}
	}
	section("roof.b1", in.Roof.B1)
	section("roof.g1", in.Roof.G1)
	section("roof.g2", in.Roof.G2)
	for i, lv := range in.Levels {
		section(fmt.Sprintf("levels[%d].column", i), lv.Column)
		if ClassOf(i, len(in.Levels)) == loads.ClassBottom {
			continue
		}
		section(fmt.Sprintf("levels[%d].b1", i), lv.B1)
		section(fmt.Sprintf("levels[%d].g1", i), lv.G1)
		section(fmt.Sprintf("levels[%d].g2", i), lv.G2)
	}
	return errors.Join(errs...)
}

// Aggregate sums the self-weight of every built part of the structure and
// records each contribution in the ledger: roof first, then each level from
// the top down, the footing zone last.
func Aggregate(in Input) (Outcome, error) {
	if err := Validate(in); err != nil {
		return Outcome{}, err
	}
	a := newAggregator(in)

	var out Outcome
	add := func(entries []Entry) {
		var sub float64
		for _, e := range entries {
			out.Ledger.add(e)
			out.TotalWeight += e.Value
			sub += e.Value
		}
		if len(entries) > 0 {
			out.Subtotals = append(out.Subtotals, Subtotal{Group: entries[0].Group, Value: sub})
		}
	}

	add(a.roof(member.Multiplier(in.Roof.Done)))
	for i := range in.Levels {
		entries := a.level(i, member.Multiplier(in.Levels[i].Done))
		if i == len(in.Levels)-1 {
			entries = append(entries, a.footingZone())
		}
		add(entries)
	}
	out.Warnings = a.warnings
	return out, nil
}

// LevelContribution is the weight level i adds when its flag is set, with
// everything else unchanged. The footing zone is not part of it.
func LevelContribution(in Input, i int) (float64, error) {
	if err := Validate(in); err != nil {
		return 0, err
	}
	if i < 0 || i >= len(in.Levels) {
		return 0, geometry.NewConfigError("levels", "level %d out of range", i)
	}
	return sum(newAggregator(in).level(i, 1)), nil
}

// RoofContribution is the weight the roof adds when its flag is set.
func RoofContribution(in Input) (float64, error) {
	if err := Validate(in); err != nil {
		return 0, err
	}
	return sum(newAggregator(in).roof(1)), nil
}

func sum(entries []Entry) float64 {
	var total float64
	for _, e := range entries {
		total += e.Value
	}
	return total
}

type aggregator struct {
	in       Input
	uc       float64
	rates    map[loads.Class]float64
	exprs    map[loads.Class]string
	warnings []string
}

func newAggregator(in Input) *aggregator {
	a := &aggregator{
		in:    in,
		uc:    in.Materials.UnitWeightConcrete,
		rates: make(map[loads.Class]float64, 3),
		exprs: make(map[loads.Class]string, 3),
	}
	for _, c := range []loads.Class{loads.ClassRoof, loads.ClassTypical, loads.ClassBottom} {
		layer := in.Layers.For(c)
		a.rates[c] = loads.AreaRate(c, layer, in.Materials)
		a.exprs[c] = loads.Explain(c, layer, in.Materials)
	}
	return a
}

func (a *aggregator) roof(m float64) []Entry {
	g := a.in.Geometry
	belt := a.in.Layers.Roof.SlabMM
	entries := []Entry{{
		Group:   GroupRoof,
		Label:   "Roof slab",
		Formula: slab.ExplainArea(a.exprs[loads.ClassRoof], g.PlanArea(), m),
		Value:   slab.Area(a.rates[loads.ClassRoof], g.PlanArea(), m),
	}}
	r := a.in.Roof
	entries = append(entries,
		a.framing(GroupRoof, "Roof", member.RoleB1, r.B1, belt, m),
		a.framing(GroupRoof, "Roof", member.RoleG1, r.G1, belt, m),
		a.framing(GroupRoof, "Roof", member.RoleG2, r.G2, belt, m),
	)
	return entries
}

func (a *aggregator) level(i int, m float64) []Entry {
	g := a.in.Geometry
	lv := a.in.Levels[i]
	name := LevelName(i)
	class := ClassOf(i, len(a.in.Levels))
	heightM := g.LevelHeightM(i)

	entries := []Entry{{
		Group:   name,
		Label:   name + " column",
		Formula: member.Explain(member.KindColumn, lv.Column, heightM, 0, a.uc, m),
		Value:   member.Weight(member.KindColumn, lv.Column, heightM, 0, a.uc, m),
	}}

	if class == loads.ClassBottom {
		entries = append(entries, Entry{
			Group:   name,
			Label:   name + " slab",
			Formula: slab.ExplainGeneralZone(a.exprs[class], g.PlanArea(), g.FootingArea(), m),
			Value:   slab.Area(a.rates[class], g.GeneralArea(), m),
		})
		return entries
	}

	belt := a.in.Layers.Typical.SlabMM
	entries = append(entries,
		Entry{
			Group:   name,
			Label:   name + " slab",
			Formula: slab.ExplainArea(a.exprs[class], g.PlanArea(), m),
			Value:   slab.Area(a.rates[class], g.PlanArea(), m),
		},
		a.framing(name, name, member.RoleB1, lv.B1, belt, m),
		a.framing(name, name, member.RoleG1, lv.G1, belt, m),
		a.framing(name, name, member.RoleG2, lv.G2, belt, m),
	)
	return entries
}

func (a *aggregator) footingZone() Entry {
	g := a.in.Geometry
	n := len(a.in.Levels)
	name := LevelName(n - 1)
	bottomSlab := a.in.Layers.Bottom.SlabMM
	return Entry{
		Group:   name,
		Label:   name + " footing zone",
		Formula: slab.ExplainFootingZone(a.exprs[loads.ClassBottom], a.uc, g.FootingThickMM, bottomSlab, g.FootingArea()),
		Value:   slab.FootingZone(a.rates[loads.ClassBottom], a.uc, g.FootingThickMM, bottomSlab, g.FootingArea()),
	}
}

func (a *aggregator) framing(group, prefix string, role member.Role, s member.Section, beltMM, m float64) Entry {
	g := a.in.Geometry
	span := g.SpanXM()
	if role.Axis() == member.AxisY {
		span = g.SpanYM()
	}
	label := fmt.Sprintf("%s %s", prefix, role)
	if member.NegativeBelt(role.Kind(), s, beltMM) {
		a.warn(fmt.Sprintf("negative belt depth: %s depth %.0f mm does not exceed belt %.0f mm", label, s.DepthMM, beltMM))
	}
	return Entry{
		Group:   group,
		Label:   label,
		Formula: member.Explain(role.Kind(), s, span, beltMM, a.uc, m),
		Value:   member.Weight(role.Kind(), s, span, beltMM, a.uc, m),
	}
}

func (a *aggregator) warn(msg string) {
	for _, w := range a.warnings {
		if w == msg {
			return
		}
	}
	a.warnings = append(a.warnings, msg)
}
