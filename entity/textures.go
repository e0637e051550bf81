package entity

// Sprite art. '.' is transparent, every other glyph is a palette colour

var ShipTexture = MustTexture("ship",
	Frame{
		".....2.....",
		"....222....",
		"....272....",
		"...22722...",
		".L2222222L.",
		"LL2232322LL",
		"L.2222222.L",
		"...9...9...",
	},
	Frame{
		".....2.....",
		"....222....",
		"....272....",
		"...22722...",
		".L2222222L.",
		"LL2232322LL",
		"L.2222222.L",
		"...6...6...",
	},
)

var BulletTexture = MustTexture("bullet",
	Frame{
		"6",
		"6",
		"9",
	},
)

// EnemyTexture keeps column 4 solid from row 2 down so a bullet cannot step through it
var EnemyTexture = MustTexture("enemy",
	Frame{
		"3.......3",
		"33.....33",
		".3333333.",
		".3323233.",
		"..33333..",
		"...333...",
		"....3....",
	},
	Frame{
		".........",
		"3.......3",
		"333333333",
		".3323233.",
		"..33333..",
		"...333...",
		"....3....",
	},
)

var SmallEnemyTexture = MustTexture("small enemy",
	Frame{
		"3...3",
		".333.",
		"33233",
		".333.",
		"3...3",
	},
	Frame{
		"..3..",
		".333.",
		"33233",
		".333.",
		"..3..",
	},
)

var ExplosionTexture = MustTexture("explosion",
	Frame{
		".......",
		".......",
		"...6...",
		"..696..",
		"...6...",
		".......",
		".......",
	},
	Frame{
		".......",
		"..6.6..",
		".69996.",
		"..939..",
		".69996.",
		"..6.6..",
		".......",
	},
	Frame{
		".9...9.",
		"..939..",
		".93C39.",
		".3CCC3.",
		".93C39.",
		"..939..",
		".9...9.",
	},
	Frame{
		"L.....L",
		"..L.L..",
		".L.C.L.",
		"...L...",
		".L.C.L.",
		"..L.L..",
		"L.....L",
	},
)

// DigitTextures is indexed by digit value
var DigitTextures = func() [10]*Texture {
	var out [10]*Texture
	for d, rows := range digitFont {
		out[d] = MustTexture("digit", Frame(rows[:]))
	}
	return out
}()

var IntroTexture = MustTexture("intro",
	banner(
		bannerLine{text: "SHOOTER", glyph: '6', scale: 2},
		bannerLine{text: "PRESS I", glyph: '2', scale: 1},
	),
	banner(
		bannerLine{text: "SHOOTER", glyph: '6', scale: 2},
		bannerLine{text: "PRESS I", glyph: '2', scale: 1, hidden: true},
	),
)

var GameOverTexture = MustTexture("game over",
	banner(
		bannerLine{text: "GAME OVER", glyph: '3', scale: 2},
		bannerLine{text: "PRESS I", glyph: '2', scale: 1},
	),
	banner(
		bannerLine{text: "GAME OVER", glyph: '3', scale: 2},
		bannerLine{text: "PRESS I", glyph: '2', scale: 1, hidden: true},
	),
)
