package models

// Performance is the metric block shared by campaigns and their variants.
type Performance struct {
	Impressions       float64 `json:"impressions" gorm:"default:0"`
	Clicks            float64 `json:"clicks" gorm:"default:0"`
	CTR               float64 `json:"ctr" gorm:"default:0"`
	Conversions       float64 `json:"conversions" gorm:"default:0"`
	ConversionRate    float64 `json:"conversionRate" gorm:"default:0"`
	CostPerConversion float64 `json:"costPerConversion" gorm:"default:0"`
	Revenue           float64 `json:"revenue" gorm:"default:0"`
	ROAS              float64 `json:"roas" gorm:"default:0;index:idx_campaigns_roas,sort:desc"`
}

func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// Derive recomputes the ratio fields from the raw counters and spend.
func (p *Performance) Derive(spend float64) {
	p.CTR = ratio(p.Clicks, p.Impressions)
	p.ConversionRate = ratio(p.Conversions, p.Clicks)
	p.ROAS = ratio(p.Revenue, spend)
	p.CostPerConversion = ratio(spend, p.Conversions)
}

// FillRatios derives only the ratios the engine left at zero.
func (p *Performance) FillRatios(spend float64) {
	d := *p
	d.Derive(spend)
	if p.CTR == 0 {
		p.CTR = d.CTR
	}
	if p.ConversionRate == 0 {
		p.ConversionRate = d.ConversionRate
	}
	if p.ROAS == 0 {
		p.ROAS = d.ROAS
	}
	if p.CostPerConversion == 0 {
		p.CostPerConversion = d.CostPerConversion
	}
}
