package palette

// Built-in palette tables. Values are reproduced exactly; do not edit.

var builtinOrder = []string{
	"grayscale",
	"gameboy",
	"nes",
	"pico8",
	"c64",
	"masterSystem",
	"rpgClassic",
	"darkFantasy",
	"lofi",
}

var builtins = map[string]Palette{
	"grayscale": {
		{0, 0, 0}, {55, 55, 55}, {110, 110, 110}, {165, 165, 165}, {220, 220, 220}, {255, 255, 255},
	},
	"gameboy": {
		{15, 56, 15}, {48, 98, 48}, {139, 172, 15}, {155, 188, 15},
	},
	"nes": {
		{124, 124, 124}, {0, 0, 252}, {0, 0, 188}, {68, 40, 188}, {148, 0, 132}, {168, 0, 32},
		{168, 16, 0}, {136, 20, 0}, {80, 48, 0}, {0, 120, 0}, {0, 104, 0}, {0, 88, 0},
		{0, 64, 88}, {0, 0, 0}, {188, 188, 188}, {0, 120, 248}, {0, 88, 248}, {104, 68, 252},
		{216, 0, 204}, {228, 0, 88}, {248, 56, 0}, {228, 92, 16}, {172, 124, 0}, {0, 184, 0},
		{0, 168, 0}, {0, 168, 68}, {0, 136, 136}, {0, 0, 0}, {248, 248, 248}, {60, 188, 252},
		{104, 136, 252}, {152, 120, 248}, {248, 120, 248}, {248, 88, 152}, {248, 120, 88},
		{252, 160, 68}, {248, 184, 0}, {184, 248, 24}, {88, 216, 84}, {88, 248, 152},
		{0, 232, 216}, {120, 120, 120},
	},
	"pico8": {
		{0, 0, 0}, {29, 43, 83}, {126, 37, 83}, {0, 135, 81}, {171, 82, 54}, {95, 87, 79},
		{194, 195, 199}, {255, 241, 232}, {255, 0, 77}, {255, 163, 0}, {255, 236, 39},
		{0, 228, 54}, {41, 173, 255}, {131, 118, 156}, {255, 119, 168}, {255, 204, 170},
	},
	"c64": {
		{0, 0, 0}, {255, 255, 255}, {136, 0, 0}, {170, 255, 238}, {204, 68, 204},
		{0, 204, 85}, {0, 0, 170}, {238, 238, 119}, {221, 136, 85}, {102, 68, 0},
		{255, 119, 119}, {51, 51, 51}, {119, 119, 119}, {170, 255, 102},
		{0, 136, 255}, {187, 187, 187},
	},
	"masterSystem": {
		{0, 0, 0}, {0, 0, 252}, {132, 0, 0}, {252, 0, 252}, {0, 252, 0},
		{0, 252, 252}, {252, 252, 0}, {252, 252, 252}, {0, 0, 0}, {0, 0, 252},
		{252, 0, 0}, {252, 0, 252}, {0, 252, 0}, {0, 252, 252}, {252, 252, 0},
		{252, 252, 252},
	},
	"rpgClassic": {
		{34, 32, 52}, {69, 40, 60}, {102, 57, 49}, {143, 86, 59}, {215, 123, 186}, {231, 168, 179},
		{161, 102, 102}, {52, 101, 36}, {87, 138, 56}, {161, 210, 131}, {57, 63, 73}, {86, 96, 110},
		{139, 155, 180}, {194, 194, 209}, {250, 255, 176}, {242, 211, 171},
	},
	"darkFantasy": {
		{26, 27, 38}, {42, 47, 68}, {65, 72, 104}, {86, 95, 137}, {122, 162, 247},
		{61, 42, 75}, {91, 61, 112}, {140, 106, 163}, {46, 77, 93}, {61, 110, 117},
		{224, 175, 104}, {255, 158, 100}, {247, 118, 142},
	},
	"lofi": {
		{37, 33, 46}, {68, 57, 86}, {138, 111, 105}, {217, 145, 161},
		{73, 88, 124}, {100, 138, 117}, {167, 189, 164}, {227, 216, 179},
		{212, 138, 106}, {161, 91, 72}, {184, 91, 91}, {96, 51, 74},
		{240, 225, 244}, {148, 114, 168}, {100, 78, 120}, {52, 46, 66},
	},
}
