package bytewords

// wordTable is the BCR-2020-012 byteword list. The order is part of the wire
// format: index i is the word for byte value i. The first and last letters of
// every word form a unique pair, which is what makes minimal words and the
// reverse lookup possible.
var wordTable = [256]string{
	"able", "acid", "also", "apex", "aqua", "arch", "atom", "aunt", "away", "axis", "back", "bald", "barn", "belt", "beta", "bias", // 0x00
	"blue", "body", "brag", "brew", "bulb", "buzz", "calm", "cash", "cats", "chef", "city", "claw", "code", "cola", "cook", "cost", // 0x10
	"crux", "curl", "cusp", "cyan", "dark", "data", "days", "deli", "dice", "diet", "door", "down", "draw", "drop", "drum", "dull", // 0x20
	"duty", "each", "easy", "echo", "edge", "epic", "even", "exam", "exit", "eyes", "fact", "fair", "fern", "figs", "film", "fish", // 0x30
	"fizz", "flap", "flew", "flux", "foxy", "free", "frog", "fuel", "fund", "gala", "game", "gear", "gems", "gift", "girl", "glow", // 0x40
	"good", "gray", "grim", "guru", "gush", "gyro", "half", "hang", "hard", "hawk", "heat", "help", "high", "hill", "holy", "hope", // 0x50
	"horn", "huts", "iced", "idea", "idle", "inch", "inky", "into", "iris", "iron", "item", "jade", "jazz", "join", "jolt", "jowl", // 0x60
	"judo", "jugs", "jump", "junk", "jury", "keep", "keno", "kept", "keys", "kick", "kiln", "king", "kite", "kiwi", "knob", "lamb", // 0x70
	"lava", "lazy", "leaf", "legs", "liar", "limp", "lion", "list", "logo", "loud", "love", "luau", "luck", "lung", "main", "many", // 0x80
	"math", "maze", "memo", "menu", "meow", "mild", "mint", "miss", "monk", "nail", "navy", "need", "news", "next", "noon", "note", // 0x90
	"numb", "obey", "oboe", "omit", "onyx", "open", "oval", "owls", "paid", "part", "peck", "play", "plus", "poem", "pool", "pose", // 0xa0
	"puff", "puma", "purr", "quad", "quiz", "race", "ramp", "real", "redo", "rich", "road", "rock", "roof", "ruby", "ruin", "runs", // 0xb0
	"rust", "safe", "saga", "scar", "sets", "silk", "skew", "slot", "soap", "solo", "song", "stub", "surf", "swan", "taco", "task", // 0xc0
	"taxi", "tent", "tied", "time", "tiny", "toil", "tomb", "toys", "trip", "tuna", "twin", "ugly", "undo", "unit", "urge", "user", // 0xd0
	"vast", "very", "veto", "vial", "vibe", "view", "visa", "void", "vows", "wall", "wand", "warm", "wasp", "wave", "waxy", "webs", // 0xe0
	"what", "when", "whiz", "wolf", "work", "yank", "yawn", "yell", "yoga", "yurt", "zaps", "zero", "zest", "zinc", "zone", "zoom", // 0xf0
}

// Word returns the four-letter byteword for b
func Word(b byte) string {
	return wordTable[b]
}

// MinimalWord returns the two-letter form of the byteword for b: its first
// and last letters
func MinimalWord(b byte) string {
	w := wordTable[b]
	return string([]byte{w[0], w[3]})
}

// Words returns a copy of the full word table, indexed by byte value
func Words() []string {
	out := make([]string, len(wordTable))
	copy(out, wordTable[:])
	return out
}
