package model

// Outlook is the sentiment tag attached to a hexagram record.
type Outlook string

const (
	OutlookBullish Outlook = "bullish"
	OutlookBearish Outlook = "bearish"
	OutlookNeutral Outlook = "neutral"
)

// Valid reports whether o is one of the three known tags.
func (o Outlook) Valid() bool {
	return o == OutlookBullish || o == OutlookBearish || o == OutlookNeutral
}

// Interpretation is the structured reading text of a hexagram.
type Interpretation struct {
	MacroImage   string `json:"macro_image"`   // 大象
	QuantReading string `json:"quant_reading"` // 量化
	Strategy     string `json:"strategy"`      // 策略
	LifeAdvice   string `json:"life_advice"`   // 生活
}

// HexagramRecord is one entry of the knowledge base. Records are built once
// at process start and never mutated afterwards.
type HexagramRecord struct {
	Name           string         `json:"name"`
	Judgment       string         `json:"judgment"`
	Interpretation Interpretation `json:"interpretation"`
	Outlook        Outlook        `json:"outlook"`
}
