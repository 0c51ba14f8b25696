package model

// Ad 片头广告定义
// swagger:model Ad
type Ad struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	VideoURL    string  `json:"videoUrl"`
	Duration    float64 `json:"duration"`
	CTAText     string  `json:"ctaText"`
	CTAURL      string  `json:"ctaUrl"`
	SkipDelay   int     `json:"skipDelay"` // 秒
	Active      bool    `json:"active"`
}

type AdsData struct {
	Ads []Ad `json:"ads"`
}
