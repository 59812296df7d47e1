package models

import "github.com/jarradburge/optivana-vanthex-monorepo/apperr"

type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusPaused    CampaignStatus = "paused"
	CampaignStatusCompleted CampaignStatus = "completed"
	CampaignStatusFailed    CampaignStatus = "failed"
)

var campaignTransitions = map[CampaignStatus][]CampaignStatus{
	CampaignStatusDraft:     {CampaignStatusActive},
	CampaignStatusActive:    {CampaignStatusPaused, CampaignStatusCompleted, CampaignStatusFailed},
	CampaignStatusPaused:    {CampaignStatusActive, CampaignStatusCompleted, CampaignStatusFailed},
	CampaignStatusCompleted: nil,
	CampaignStatusFailed:    nil,
}

func (s CampaignStatus) Valid() bool {
	_, ok := campaignTransitions[s]
	return ok
}

func (s CampaignStatus) CanTransitionTo(next CampaignStatus) bool {
	if s == next {
		return s.Valid()
	}
	for _, allowed := range campaignTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo moves the campaign into next, rejecting illegal moves.
// Entering active also activates any draft variants.
func (c *Campaign) TransitionTo(next CampaignStatus) error {
	if !next.Valid() {
		return apperr.Validationf("Invalid campaign status: %q", next)
	}
	if !c.Status.CanTransitionTo(next) {
		return apperr.Validationf("Cannot transition campaign from %s to %s", c.Status, next)
	}
	c.Status = next
	if next == CampaignStatusActive {
		c.ActivateDraftVariants()
	}
	return nil
}

// ActivateDraftVariants moves every draft variant to active and returns how many moved.
func (c *Campaign) ActivateDraftVariants() int {
	n := 0
	for i := range c.Variants {
		if c.Variants[i].Status == VariantStatusDraft {
			c.Variants[i].Status = VariantStatusActive
			n++
		}
	}
	return n
}

type VariantStatus string

const (
	VariantStatusDraft     VariantStatus = "draft"
	VariantStatusActive    VariantStatus = "active"
	VariantStatusPaused    VariantStatus = "paused"
	VariantStatusCompleted VariantStatus = "completed"
	VariantStatusWinner    VariantStatus = "winner"
)

var variantTransitions = map[VariantStatus][]VariantStatus{
	VariantStatusDraft:     {VariantStatusActive, VariantStatusCompleted},
	VariantStatusActive:    {VariantStatusPaused, VariantStatusCompleted, VariantStatusWinner},
	VariantStatusPaused:    {VariantStatusActive, VariantStatusCompleted},
	VariantStatusWinner:    {VariantStatusPaused, VariantStatusCompleted},
	VariantStatusCompleted: nil,
}

func (s VariantStatus) Valid() bool {
	_, ok := variantTransitions[s]
	return ok
}

func (s VariantStatus) CanTransitionTo(next VariantStatus) bool {
	if s == next {
		return s.Valid()
	}
	for _, allowed := range variantTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (v *Variant) TransitionTo(next VariantStatus) error {
	if !v.Status.CanTransitionTo(next) {
		return apperr.Validationf("Cannot transition variant %s from %s to %s", v.ID, v.Status, next)
	}
	v.Status = next
	return nil
}
