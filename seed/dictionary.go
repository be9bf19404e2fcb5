package seed

// dictionary is the fixed 1024-word phrase dictionary. Entries are sorted,
// lowercase, and unique within their first three characters, which is the
// prefix length used for word lookup. The list is frozen: changing any entry
// changes the meaning of existing phrases.
var dictionary = [DictionarySize]string{
	"abandon", "ability", "absorb", "abuse", "academy", "accept", "achieve", "acid",
	"acquire", "across", "action", "adapt", "adjust", "admit", "adopt", "advance",
	"aerial", "affair", "again", "agent", "agree", "ahead", "alarm", "album",
	"alcohol", "alert", "alien", "allow", "almost", "alone", "alpha", "already",
	"also", "alter", "always", "amateur", "ambition", "amused", "analyst", "anchor",
	"anger", "animal", "ankle", "announce", "another", "answer", "antenna", "anxiety",
	"apart", "apology", "appear", "april", "area", "argue", "arise", "armor",
	"around", "arrange", "artist", "ascend", "ash", "aspect", "assault", "asthma",
	"athlete", "atom", "auction", "audit", "august", "aunt", "author", "avenue",
	"avocado", "awake", "awesome", "awful", "awkward", "axis", "baby", "bachelor",
	"badge", "balance", "bamboo", "banana", "barely", "base", "battle", "beach",
	"because", "beef", "before", "begin", "behave", "believe", "bench", "betray",
	"beyond", "bicycle", "bid", "bike", "bind", "biology", "bird", "bitter",
	"black", "bleak", "blind", "blood", "blue", "board", "boil", "bomb",
	"bone", "book", "border", "boss", "bottom", "bounce", "box", "boy",
	"bracket", "bread", "brick", "broccoli", "brush", "buddy", "buffalo", "build",
	"bulb", "bundle", "burden", "bus", "butter", "buyer", "buzz", "cabin",
	"cactus", "cage", "cake", "camera", "canal", "capable", "car", "case",
	"cat", "caught", "cave", "ceiling", "celery", "cement", "census", "cereal",
	"chair", "cheap", "choice", "chronic", "chuckle", "cigar", "cinnamon", "circle",
	"citizen", "civil", "claim", "clean", "click", "clock", "club", "coach",
	"coconut", "coffee", "cogwheel", "coil", "collect", "combine", "concert", "cook",
	"copper", "coral", "cost", "cotton", "couch", "cover", "coyote", "cream",
	"cricket", "crop", "crucial", "cry", "cube", "culture", "cup", "curious",
	"cushion", "cute", "cycle", "dad", "damage", "dance", "dash", "daughter",
	"dawn", "day", "deal", "debate", "decade", "deer", "defense", "degree",
	"delay", "demand", "denial", "depart", "describe", "detail", "develop", "diagram",
	"dice", "diesel", "differ", "digital", "dilemma", "dinner", "direct", "disagree",
	"divert", "dizzy", "doctor", "doll", "domain", "donate", "door", "dose",
	"double", "dove", "draft", "dream", "drift", "drop", "drum", "dry",
	"duck", "dumb", "during", "dusk", "dutch", "dwarf", "dynamic", "eager",
	"early", "easily", "echo", "ecology", "edge", "edit", "educate", "effort",
	"eight", "either", "elbow", "elder", "electric", "elite", "else", "embark",
	"emerge", "emotion", "employ", "enable", "end", "enemy", "enforce", "enhance",
	"enjoy", "enlist", "enough", "enrich", "ensure", "enter", "envelope", "episode",
	"equal", "era", "erode", "error", "erupt", "essay", "estate", "eternal",
	"ethics", "evidence", "evoke", "exact", "excess", "execute", "exhaust", "exile",
	"exotic", "expand", "extend", "eye", "face", "fade", "faint", "fall",
	"fame", "fan", "farm", "fashion", "fat", "fault", "favorite", "feature",
	"february", "federal", "fee", "fence", "festival", "fetch", "fever", "few",
	"fiber", "fiction", "field", "figure", "file", "final", "fire", "fiscal",
	"fit", "flag", "flee", "flight", "float", "fluid", "fly", "foam",
	"focus", "fog", "foil", "fold", "food", "force", "fossil", "found",
	"fragile", "frequent", "friend", "frog", "fruit", "fuel", "fun", "furnace",
	"future", "gadget", "gain", "galaxy", "game", "gap", "garage", "gate",
	"gauge", "gaze", "general", "gesture", "ghost", "giant", "gift", "giggle",
	"ginger", "giraffe", "give", "glad", "glide", "glue", "goat", "goddess",
	"gold", "good", "gorilla", "gospel", "govern", "gown", "grab", "great",
	"grid", "grocery", "grunt", "guard", "guide", "gun", "gym", "habit",
	"hair", "half", "hammer", "hand", "happy", "harbor", "hat", "have",
	"hawk", "hazard", "hedgehog", "height", "hello", "hen", "hero", "hidden",
	"high", "hill", "hint", "hip", "hire", "history", "hobby", "hockey",
	"hold", "honey", "hood", "hope", "horn", "hospital", "hotel", "hour",
	"hover", "hub", "huge", "human", "hundred", "hurdle", "husband", "hybrid",
	"icon", "idea", "idle", "ignore", "ill", "image", "imitate", "immense",
	"impact", "inch", "index", "infant", "inhale", "initial", "inmate", "inner",
	"input", "inquiry", "insane", "intact", "invest", "iron", "island", "isolate",
	"issue", "item", "ivory", "jacket", "jaguar", "jazz", "jealous", "jelly",
	"jewel", "job", "join", "joke", "journey", "joy", "judge", "juice",
	"jump", "jungle", "just", "keen", "ketchup", "key", "kick", "kid",
	"kind", "kiss", "kit", "kiwi", "knee", "knife", "knock", "lab",
	"ladder", "lake", "language", "laptop", "large", "later", "laugh", "lava",
	"law", "layer", "lazy", "leader", "lecture", "left", "leg", "leisure",
	"lemon", "leopard", "lesson", "letter", "level", "liar", "liberty", "license",
	"life", "light", "like", "limb", "link", "lion", "liquid", "little",
	"live", "lizard", "load", "lobster", "local", "logic", "lonely", "loop",
	"lottery", "loud", "love", "loyal", "lucky", "luggage", "lunar", "luxury",
	"lyrics", "machine", "mad", "magic", "maid", "major", "make", "mammal",
	"man", "maple", "marble", "mask", "match", "maze", "meadow", "mechanic",
	"medal", "melody", "member", "mention", "mercy", "mesh", "metal", "middle",
	"milk", "mimic", "mind", "misery", "mix", "mobile", "model", "mom",
	"monitor", "moon", "moral", "mosquito", "mother", "mountain", "move", "much",
	"muffin", "mule", "mutual", "myself", "myth", "naive", "name", "napkin",
	"narrow", "nasty", "nation", "near", "neck", "need", "negative", "neither",
	"nerve", "nest", "net", "neutral", "never", "news", "next", "nice",
	"night", "noble", "noise", "nominee", "noodle", "normal", "nose", "novel",
	"now", "nuclear", "number", "nurse", "nut", "oak", "obey", "object",
	"oblige", "obscure", "obtain", "obvious", "occur", "ocean", "odor", "off",
	"often", "oil", "okay", "old", "olive", "olympic", "omit", "once",
	"one", "onion", "online", "open", "oppose", "option", "orange", "orbit",
	"orchard", "order", "organ", "orient", "orphan", "ostrich", "other", "outdoor",
	"oval", "oven", "own", "oyster", "ozone", "pact", "paddle", "page",
	"pair", "palace", "panda", "paper", "parade", "pass", "patch", "pause",
	"pave", "peace", "pelican", "pen", "people", "pepper", "perfect", "pet",
	"phone", "phrase", "physical", "piano", "picnic", "piece", "pig", "pill",
	"pioneer", "pipe", "pistol", "pitch", "pizza", "place", "please", "pluck",
	"poem", "point", "polar", "pond", "pool", "popular", "portion", "potato",
	"poverty", "powder", "practice", "predict", "price", "problem", "public", "pudding",
	"pull", "pumpkin", "punch", "pupil", "purchase", "put", "puzzle", "pyramid",
	"quality", "question", "quick", "quote", "rabbit", "raccoon", "radar", "rail",
	"rally", "ramp", "ranch", "rapid", "rate", "raven", "raw", "razor",
	"ready", "rebel", "recall", "reduce", "reflect", "region", "reject", "relax",
	"remain", "render", "reopen", "require", "rescue", "retire", "reunion", "reveal",
	"reward", "rhythm", "rib", "rice", "ride", "rifle", "right", "ring",
	"riot", "risk", "ritual", "rival", "road", "robot", "rocket", "romance",
	"roof", "rose", "rotate", "rough", "royal", "rubber", "rude", "rug",
	"run", "rural", "sad", "safe", "sail", "salad", "same", "sand",
	"satisfy", "sauce", "save", "say", "scale", "scene", "science", "scorpion",
	"scrap", "sea", "second", "seed", "segment", "select", "seminar", "senior",
	"series", "session", "settle", "seven", "shadow", "shield", "shock", "shrimp",
	"shuffle", "shy", "sibling", "sick", "side", "siege", "sight", "silent",
	"similar", "since", "siren", "sister", "six", "size", "skate", "sketch",
	"ski", "skull", "slab", "sleep", "slice", "slogan", "slush", "small",
	"smile", "smoke", "sniff", "snow", "soap", "soccer", "soda", "soft",
	"solar", "someone", "song", "soon", "sorry", "soul", "space", "speak",
	"sphere", "split", "spoil", "spray", "spy", "square", "stable", "steak",
	"stick", "stock", "strategy", "student", "style", "subject", "success", "suffer",
	"sugar", "suit", "summer", "sun", "super", "sure", "suspect", "swallow",
	"swear", "swift", "sword", "symbol", "syrup", "system", "tackle", "tag",
	"tail", "talent", "tank", "tape", "target", "task", "tattoo", "taxi",
	"teach", "tell", "ten", "term", "test", "thank", "theme", "thing",
	"thought", "three", "thumb", "ticket", "tide", "tiger", "tilt", "timber",
	"tiny", "tip", "tired", "title", "toast", "tobacco", "today", "toe",
	"together", "toilet", "token", "tomato", "tone", "tool", "top", "torch",
	"toss", "total", "toward", "toy", "track", "treat", "trial", "trophy",
	"truck", "try", "tube", "tuition", "tumble", "tuna", "turkey", "twelve",
	"twice", "type", "ugly", "umbrella", "unable", "uncle", "under", "unfair",
	"unhappy", "uniform", "unknown", "unlock", "until", "unusual", "unveil", "upgrade",
	"uphold", "upon", "upper", "upset", "urban", "urge", "usage", "use",
	"usual", "utility", "vacant", "vague", "valid", "van", "various", "vast",
	"vault", "vehicle", "velvet", "vendor", "verb", "vessel", "veteran", "viable",
	"vibrant", "vicious", "video", "view", "vintage", "violin", "virtual", "visa",
	"vital", "vivid", "vocal", "voice", "volcano", "vote", "voyage", "wage",
	"wait", "walk", "want", "wash", "water", "wave", "way", "wealth",
	"web", "wedding", "weekend", "weird", "welcome", "west", "wet", "whale",
	"wheat", "whip", "wife", "wild", "win", "wire", "wisdom", "witness",
	"wolf", "woman", "wonder", "wood", "word", "wrap", "wreck", "wrist",
	"yard", "year", "yellow", "you", "zebra", "zero", "zone", "zoo",
}
