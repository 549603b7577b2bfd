// Package card defines the behavior data model printed on project cards.
// Records here are plain values: they are decoded once per card, normalized,
// and then treated as immutable by every downstream consumer.
package card

import "strings"

// ResourceType identifies a resource, tile, or marker on a card.
// Production variants carry a "-production" suffix and modify a recurring
// yield rather than a one-time stock.
type ResourceType string

const (
	ResourceCredits  ResourceType = "credits"
	ResourceSteel    ResourceType = "steel"
	ResourceTitanium ResourceType = "titanium"
	ResourcePlants   ResourceType = "plants"
	ResourceEnergy   ResourceType = "energy"
	ResourceHeat     ResourceType = "heat"
	ResourceMicrobes ResourceType = "microbes"
	ResourceAnimals  ResourceType = "animals"
	ResourceFloaters ResourceType = "floaters"
	ResourceScience  ResourceType = "science"

	ResourceCreditsProduction  ResourceType = "credits-production"
	ResourceSteelProduction    ResourceType = "steel-production"
	ResourceTitaniumProduction ResourceType = "titanium-production"
	ResourcePlantsProduction   ResourceType = "plants-production"
	ResourceEnergyProduction   ResourceType = "energy-production"
	ResourceHeatProduction     ResourceType = "heat-production"

	ResourceCardDraw ResourceType = "card-draw"
	ResourceCardTake ResourceType = "card-take"
	ResourceCardPeek ResourceType = "card-peek"

	ResourceCityPlacement     ResourceType = "city-placement"
	ResourceOceanPlacement    ResourceType = "ocean-placement"
	ResourceGreeneryPlacement ResourceType = "greenery-placement"

	ResourceTemperature ResourceType = "temperature"
	ResourceOxygen      ResourceType = "oxygen"
	ResourceTR          ResourceType = "tr"

	ResourceDiscount          ResourceType = "discount"
	ResourcePaymentSubstitute ResourceType = "payment-substitute"
	ResourceValueModifier     ResourceType = "value-modifier"
	ResourceDefense           ResourceType = "defense"
)

const productionSuffix = "-production"

// IsProduction reports whether the type modifies a recurring yield.
func (r ResourceType) IsProduction() bool {
	return strings.Contains(string(r), "production")
}

// Base strips the production suffix, yielding the stock resource type.
func (r ResourceType) Base() ResourceType {
	return ResourceType(strings.TrimSuffix(string(r), productionSuffix))
}

// IsPlacement reports whether the type places a tile on the board.
func (r ResourceType) IsPlacement() bool {
	switch r {
	case ResourceCityPlacement, ResourceOceanPlacement, ResourceGreeneryPlacement:
		return true
	}
	return false
}

// TargetType scopes who or what a resource amount or trigger applies to.
type TargetType string

const (
	TargetSelfPlayer TargetType = "self-player"
	TargetSelfCard   TargetType = "self-card"
	TargetAnyCard    TargetType = "any-card"
	TargetAnyPlayer  TargetType = "any-player"
	TargetOpponent   TargetType = "opponent"
	TargetNone       TargetType = "none"
)

// Location constrains where a trigger or count applies.
type Location string

const (
	LocationAnywhere Location = "anywhere"
	LocationMars     Location = "mars"
)

// Tag is a card category marker (space, science, building, ...).
type Tag string

// CardType distinguishes the printed card frames.
type CardType string

const (
	CardTypeAutomated   CardType = "automated"
	CardTypeActive      CardType = "active"
	CardTypeEvent       CardType = "event"
	CardTypeCorporation CardType = "corporation"
	CardTypePrelude     CardType = "prelude"
)

// TriggerKind tells how a behavior activates: by the player or by the game.
type TriggerKind string

const (
	TriggerManual TriggerKind = "manual"
	TriggerAuto   TriggerKind = "auto"
)

// TriggerType names the game event a conditional trigger listens for.
type TriggerType string

const (
	TriggerOceanPlaced           TriggerType = "ocean-placed"
	TriggerTemperatureRaise      TriggerType = "temperature-raise"
	TriggerOxygenRaise           TriggerType = "oxygen-raise"
	TriggerCityPlaced            TriggerType = "city-placed"
	TriggerGreeneryPlaced        TriggerType = "greenery-placed"
	TriggerTilePlaced            TriggerType = "tile-placed"
	TriggerCardPlayed            TriggerType = "card-played"
	TriggerStandardProjectPlayed TriggerType = "standard-project-played"
	TriggerTagPlayed             TriggerType = "tag-played"
	TriggerProductionIncreased   TriggerType = "production-increased"
	TriggerPlacementBonusGained  TriggerType = "placement-bonus-gained"
)

// MinMax is an optional value range constraint.
type MinMax struct {
	Min *int `json:"min,omitempty" yaml:"min,omitempty"`
	Max *int `json:"max,omitempty" yaml:"max,omitempty"`
}

// Per multiplies a gain by a counted thing ("1 plant per city tile").
type Per struct {
	Type     ResourceType `json:"type" yaml:"type"`
	Amount   int          `json:"amount" yaml:"amount"`
	Tag      *Tag         `json:"tag,omitempty" yaml:"tag,omitempty"`
	Target   *TargetType  `json:"target,omitempty" yaml:"target,omitempty"`
	Location *Location    `json:"location,omitempty" yaml:"location,omitempty"`
}

// Selector is one AND-group of trigger matching criteria. A condition with
// several selectors fires when any selector matches in full.
type Selector struct {
	Tags             []Tag      `json:"tags,omitempty" yaml:"tags,omitempty"`
	CardTypes        []CardType `json:"cardTypes,omitempty" yaml:"cardTypes,omitempty"`
	StandardProjects []string   `json:"standardProjects,omitempty" yaml:"standardProjects,omitempty"`
}

// TriggerCondition describes what fires an automatic behavior.
type TriggerCondition struct {
	Type                 TriggerType    `json:"type" yaml:"type"`
	Target               *TargetType    `json:"target,omitempty" yaml:"target,omitempty"`
	Location             *Location      `json:"location,omitempty" yaml:"location,omitempty"`
	AffectedResources    []ResourceType `json:"affectedResources,omitempty" yaml:"affectedResources,omitempty"`
	AffectedTags         []Tag          `json:"affectedTags,omitempty" yaml:"affectedTags,omitempty"`
	AffectedCardTypes    []CardType     `json:"affectedCardTypes,omitempty" yaml:"affectedCardTypes,omitempty"`
	RequiredOriginalCost *MinMax        `json:"requiredOriginalCost,omitempty" yaml:"requiredOriginalCost,omitempty"`
	Selectors            []Selector     `json:"selectors,omitempty" yaml:"selectors,omitempty"`
}

// Trigger says when a behavior activates and, for auto triggers, on what.
type Trigger struct {
	Type      TriggerKind       `json:"type" yaml:"type"`
	Condition *TriggerCondition `json:"condition,omitempty" yaml:"condition,omitempty"`
}

// ResourceAmount is one signed resource quantity on either side of a
// behavior. Negative amounts are costs or losses.
type ResourceAmount struct {
	Type   ResourceType `json:"type" yaml:"type"`
	Amount int          `json:"amount,omitempty" yaml:"amount,omitempty"`
	Target TargetType   `json:"target,omitempty" yaml:"target,omitempty"`
	Per    *Per         `json:"per,omitempty" yaml:"per,omitempty"`

	// AffectedTags and friends qualify discount/defense style outputs.
	AffectedTags             []Tag          `json:"affectedTags,omitempty" yaml:"affectedTags,omitempty"`
	AffectedResources        []ResourceType `json:"affectedResources,omitempty" yaml:"affectedResources,omitempty"`
	AffectedStandardProjects []string       `json:"affectedStandardProjects,omitempty" yaml:"affectedStandardProjects,omitempty"`

	// ForceCompact is a display override attached by the space optimizer.
	// It never round-trips through card files.
	ForceCompact bool `json:"-" yaml:"-"`
}

// Choice is one of several input/output combinations the player picks from.
type Choice struct {
	Inputs  []ResourceAmount `json:"inputs,omitempty" yaml:"inputs,omitempty"`
	Outputs []ResourceAmount `json:"outputs,omitempty" yaml:"outputs,omitempty"`
}

// Behavior is one printed effect: inputs spent, outputs gained, and the
// triggers and choices that shape how it fires.
type Behavior struct {
	Triggers    []Trigger        `json:"triggers,omitempty" yaml:"triggers,omitempty"`
	Inputs      []ResourceAmount `json:"inputs,omitempty" yaml:"inputs,omitempty"`
	Outputs     []ResourceAmount `json:"outputs,omitempty" yaml:"outputs,omitempty"`
	Choices     []Choice         `json:"choices,omitempty" yaml:"choices,omitempty"`
	Per         *Per             `json:"per,omitempty" yaml:"per,omitempty"`
	Description string           `json:"description,omitempty" yaml:"description,omitempty"`
}

// HasChoices reports whether the behavior offers player choices.
func (b Behavior) HasChoices() bool { return len(b.Choices) > 0 }

// FirstTrigger returns the first trigger, if any.
func (b Behavior) FirstTrigger() (Trigger, bool) {
	if len(b.Triggers) == 0 {
		return Trigger{}, false
	}
	return b.Triggers[0], true
}

// Card is a full printed card as stored in a card file.
type Card struct {
	ID          string     `json:"id" yaml:"id"`
	Name        string     `json:"name" yaml:"name"`
	Type        CardType   `json:"type" yaml:"type"`
	Cost        int        `json:"cost" yaml:"cost"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	Tags        []Tag      `json:"tags,omitempty" yaml:"tags,omitempty"`
	Behaviors   []Behavior `json:"behaviors,omitempty" yaml:"behaviors,omitempty"`
}
