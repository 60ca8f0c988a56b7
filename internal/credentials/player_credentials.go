package credentials

import (
	"crypto/rand"
	"math/big"
)

// Word lists for suggested player names. Kids can type their own name,
// but the suggestion keeps signup to two taps.
var adjectives = []string{
	"happy", "sunny", "brave", "bright", "cool", "swift", "clever", "jolly",
	"mighty", "super", "star", "wild", "funny", "lucky", "magic", "bouncy",
	"cheerful", "daring", "eager", "flying", "gentle", "hyper", "jazzy", "kindly",
	"lively", "merry", "noble", "perky", "quick", "royal", "snappy", "turbo",
	"zippy", "awesome", "bold", "cosmic", "dynamic", "epic", "fantastic", "groovy",
}

var nouns = []string{
	"dragon", "tiger", "eagle", "dolphin", "panda", "lion", "wolf", "bear",
	"fox", "hawk", "shark", "phoenix", "unicorn", "rocket", "ninja", "wizard",
	"knight", "pirate", "robot", "astronaut", "hero", "champion", "explorer", "ranger",
	"warrior", "captain", "genius", "comet", "thunder", "lightning", "tornado", "blizzard",
	"flame", "storm", "shadow", "spirit", "ghost", "monster", "alien", "racer",
}

// GeneratePlayerName generates a random name in the format
// "adjective-noun".
func GeneratePlayerName() (string, error) {
	adjective, err := randomElement(adjectives)
	if err != nil {
		return "", err
	}

	noun, err := randomElement(nouns)
	if err != nil {
		return "", err
	}

	return adjective + "-" + noun, nil
}

// GeneratePlayerPIN generates a random 4-digit PIN.
func GeneratePlayerPIN() (string, error) {
	digits := "0123456789"
	pin := make([]byte, 4)

	for i := range pin {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			return "", err
		}
		pin[i] = digits[num.Int64()]
	}

	return string(pin), nil
}

// randomElement picks a random element from a string slice.
func randomElement(slice []string) (string, error) {
	if len(slice) == 0 {
		return "", nil
	}

	num, err := rand.Int(rand.Reader, big.NewInt(int64(len(slice))))
	if err != nil {
		return "", err
	}

	return slice[num.Int64()], nil
}
