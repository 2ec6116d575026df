package material

// IconSet is the visual family of a material. It selects the default textures used for items, blocks and fluids
// derived from the material.
type IconSet struct {
	iconSet
}

// Dull returns the Dull icon set. It is the icon set of materials that do not specify one.
func Dull() IconSet { return IconSet{0} }

// None returns the None icon set.
func None() IconSet { return IconSet{1} }

// Metallic returns the Metallic icon set.
func Metallic() IconSet { return IconSet{2} }

// Magnetic returns the Magnetic icon set.
func Magnetic() IconSet { return IconSet{3} }

// Quartz returns the Quartz icon set.
func Quartz() IconSet { return IconSet{4} }

// Diamond returns the Diamond icon set.
func Diamond() IconSet { return IconSet{5} }

// Emerald returns the Emerald icon set.
func Emerald() IconSet { return IconSet{6} }

// Shiny returns the Shiny icon set.
func Shiny() IconSet { return IconSet{7} }

// Rough returns the Rough icon set.
func Rough() IconSet { return IconSet{8} }

// Fine returns the Fine icon set.
func Fine() IconSet { return IconSet{9} }

// Sand returns the Sand icon set.
func Sand() IconSet { return IconSet{10} }

// Flint returns the Flint icon set.
func Flint() IconSet { return IconSet{11} }

// Ruby returns the Ruby icon set.
func Ruby() IconSet { return IconSet{12} }

// Lapis returns the Lapis icon set.
func Lapis() IconSet { return IconSet{13} }

// Fluid returns the Fluid icon set, used by materials that mostly exist as a molten or liquid fluid.
func Fluid() IconSet { return IconSet{14} }

// Gas returns the Gas icon set.
func Gas() IconSet { return IconSet{15} }

// Lignite returns the Lignite icon set.
func Lignite() IconSet { return IconSet{16} }

// Opal returns the Opal icon set.
func Opal() IconSet { return IconSet{17} }

// Glass returns the Glass icon set.
func Glass() IconSet { return IconSet{18} }

// Wood returns the Wood icon set.
func Wood() IconSet { return IconSet{19} }

// GemHorizontal returns the GemHorizontal icon set.
func GemHorizontal() IconSet { return IconSet{20} }

// GemVertical returns the GemVertical icon set.
func GemVertical() IconSet { return IconSet{21} }

// Paper returns the Paper icon set.
func Paper() IconSet { return IconSet{22} }

// NetherStar returns the NetherStar icon set.
func NetherStar() IconSet { return IconSet{23} }

// Powder returns the Powder icon set.
func Powder() IconSet { return IconSet{24} }

// Bright returns the Bright icon set.
func Bright() IconSet { return IconSet{25} }

// Shards returns the Shards icon set.
func Shards() IconSet { return IconSet{26} }

// IconSets returns all icon sets a material may have.
func IconSets() []IconSet {
	return []IconSet{
		Dull(), None(), Metallic(), Magnetic(), Quartz(), Diamond(), Emerald(), Shiny(), Rough(), Fine(), Sand(),
		Flint(), Ruby(), Lapis(), Fluid(), Gas(), Lignite(), Opal(), Glass(), Wood(), GemHorizontal(), GemVertical(),
		Paper(), NetherStar(), Powder(), Bright(), Shards(),
	}
}

type iconSet uint8

// Uint8 returns the icon set as a uint8.
func (s iconSet) Uint8() uint8 { return uint8(s) }

// Uint8 returns the icon set as a uint8.
func (s IconSet) Uint8() uint8 { return s.iconSet.Uint8() }

// String returns the lower case name of the icon set, which is also the directory name of its textures.
func (s iconSet) String() string {
	switch s {
	case 0:
		return "dull"
	case 1:
		return "none"
	case 2:
		return "metallic"
	case 3:
		return "magnetic"
	case 4:
		return "quartz"
	case 5:
		return "diamond"
	case 6:
		return "emerald"
	case 7:
		return "shiny"
	case 8:
		return "rough"
	case 9:
		return "fine"
	case 10:
		return "sand"
	case 11:
		return "flint"
	case 12:
		return "ruby"
	case 13:
		return "lapis"
	case 14:
		return "fluid"
	case 15:
		return "gas"
	case 16:
		return "lignite"
	case 17:
		return "opal"
	case 18:
		return "glass"
	case 19:
		return "wood"
	case 20:
		return "gem_horizontal"
	case 21:
		return "gem_vertical"
	case 22:
		return "paper"
	case 23:
		return "netherstar"
	case 24:
		return "powder"
	case 25:
		return "bright"
	case 26:
		return "shards"
	}
	panic("unknown icon set")
}

// String returns the lower case name of the icon set, which is also the directory name of its textures.
func (s IconSet) String() string { return s.iconSet.String() }

// IconSetByName looks up an icon set by the name returned from IconSet.String. The lookup is case-insensitive. If no
// icon set has the name, false is returned.
func IconSetByName(name string) (IconSet, bool) {
	name = foldName(name)
	for _, s := range IconSets() {
		if s.String() == name {
			return s, true
		}
	}
	return IconSet{}, false
}
