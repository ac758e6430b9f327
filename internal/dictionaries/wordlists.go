package dictionaries

// commonPasswords is ordered most- to least-common, matching the rank
// ordering published compromised-password frequency lists use.
var commonPasswords = []string{
	"123456", "password", "12345678", "qwerty", "123456789", "12345",
	"1234", "111111", "1234567", "dragon", "123123", "baseball",
	"abc123", "football", "monkey", "letmein", "696969", "shadow",
	"master", "666666", "qwertyuiop", "123321", "mustang", "1234567890",
	"michael", "654321", "superman", "1qaz2wsx", "7777777", "121212",
	"000000", "qazwsx", "123qwe", "killer", "trustno1", "jordan",
	"jennifer", "zxcvbnm", "asdfgh", "hunter", "buster", "soccer",
	"harley", "batman", "andrew", "tigger", "sunshine", "iloveyou",
	"fuckyou", "2000", "charlie", "robert", "thomas", "hockey",
	"ranger", "daniel", "starwars", "klaster", "112233", "george",
	"computer", "michelle", "jessica", "pepper", "1111", "zxcvbn",
	"555555", "11111111", "131313", "freedom", "777777", "pass",
	"maggie", "159753", "aaaaaa", "ginger", "princess", "joshua",
	"cheese", "amanda", "summer", "love", "ashley", "6969", "nicole",
	"chelsea", "biteme", "matthew", "access", "yankees", "987654321",
	"dallas", "austin", "thunder", "taylor", "matrix", "mobilemail",
	"mom", "monitor", "monitoring", "montana", "moon", "moscow",
}

// englishWords is ordered roughly by frequency, drawn from general
// English usage rather than password corpora.
var englishWords = []string{
	"the", "be", "to", "of", "and", "a", "in", "that", "have", "i",
	"it", "for", "not", "on", "with", "he", "as", "you", "do", "at",
	"this", "but", "his", "by", "from", "they", "we", "say", "her", "she",
	"or", "an", "will", "my", "one", "all", "would", "there", "their", "what",
	"so", "up", "out", "if", "about", "who", "get", "which", "go", "me",
	"when", "make", "can", "like", "time", "no", "just", "him", "know", "take",
	"people", "into", "year", "your", "good", "some", "could", "them", "see", "other",
	"than", "then", "now", "look", "only", "come", "its", "over", "think", "also",
	"back", "after", "use", "two", "how", "our", "work", "first", "well", "way",
	"even", "new", "want", "because", "any", "these", "give", "day", "most", "us",
	"love", "life", "world", "water", "house", "light", "money", "music", "happy", "friend",
	"family", "school", "system", "number", "story", "child", "night", "point", "home", "power",
}

// maleNames is ordered by rough popularity in US baby-name data.
var maleNames = []string{
	"james", "john", "robert", "michael", "william", "david", "richard",
	"joseph", "thomas", "charles", "christopher", "daniel", "matthew",
	"anthony", "donald", "mark", "paul", "steven", "andrew", "kenneth",
	"joshua", "kevin", "brian", "george", "edward", "ronald", "timothy",
	"jason", "jeffrey", "ryan", "jacob", "gary", "nicholas", "eric",
	"jonathan", "stephen", "larry", "justin", "scott", "brandon",
	"benjamin", "samuel", "frank", "gregory", "raymond", "alexander",
	"patrick", "jack", "dennis", "jerry",
}

// femaleNames is ordered by rough popularity in US baby-name data.
var femaleNames = []string{
	"mary", "patricia", "jennifer", "linda", "elizabeth", "barbara",
	"susan", "jessica", "sarah", "karen", "nancy", "lisa", "margaret",
	"betty", "sandra", "ashley", "dorothy", "kimberly", "emily",
	"donna", "michelle", "carol", "amanda", "melissa", "deborah",
	"stephanie", "rebecca", "laura", "sharon", "cynthia", "kathleen",
	"amy", "angela", "shirley", "anna", "brenda", "pamela", "emma",
	"nicole", "helen", "samantha", "katherine", "christine", "debra",
	"rachel", "catherine", "carolyn", "janet", "maria", "olivia",
}

// surnames is ordered by rough frequency in US census surname data.
var surnames = []string{
	"smith", "johnson", "williams", "brown", "jones", "garcia",
	"miller", "davis", "rodriguez", "martinez", "hernandez", "lopez",
	"gonzalez", "wilson", "anderson", "thomas", "taylor", "moore",
	"jackson", "martin", "lee", "perez", "thompson", "white", "harris",
	"sanchez", "clark", "ramirez", "lewis", "robinson", "walker",
	"young", "allen", "king", "wright", "scott", "torres", "nguyen",
	"hill", "flores", "green", "adams", "nelson", "baker", "hall",
	"rivera", "campbell", "mitchell", "carter", "roberts",
}
