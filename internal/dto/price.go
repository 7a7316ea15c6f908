package dto

type SetPriceRequestDTO struct {
	UnitPrice   int64  `json:"unit_price" example:"20000"`
	Description string `json:"description" example:"Bizwar won"`
	Unit        string `json:"unit" example:"round"`
	Pooled      bool   `json:"pooled" example:"false"`
}

type PriceResponseDTO struct {
	EventType   string `json:"event_type" example:"bizwar_win"`
	UnitPrice   int64  `json:"unit_price" example:"20000"`
	Description string `json:"description" example:"Bizwar won"`
	Unit        string `json:"unit" example:"round"`
	Pooled      bool   `json:"pooled" example:"false"`
}
