package model

type StickerCollection struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Icon     string    `json:"icon"`
	Stickers []Sticker `json:"stickers"`
}

type Sticker struct {
	SpriteURL string `json:"spriteURL"`
}

type GIF struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}
