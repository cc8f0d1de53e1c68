// Package names generates readable game names like "brave-green-dolphin"
// for games created without one.
package names

import "math/rand/v2"

var adjectives = []string{
	"brave", "calm", "clever", "eager", "fancy", "gentle", "happy",
	"jolly", "lucky", "mighty", "nimble", "proud", "quick", "quiet",
	"sleepy", "sly", "swift", "wild", "witty", "zesty",
}

var colors = []string{
	"amber", "blue", "coral", "crimson", "golden", "green", "indigo",
	"ivory", "jade", "olive", "orange", "pink", "purple", "red",
	"scarlet", "silver", "teal", "violet",
}

var animals = []string{
	"badger", "bison", "crane", "dolphin", "falcon", "ferret", "gecko",
	"heron", "lemur", "lynx", "marlin", "otter", "panda", "puffin",
	"raven", "salmon", "tiger", "walrus", "wombat", "yak",
}

// Generate returns a random adjective-color-animal name.
func Generate() string {
	return adjectives[rand.IntN(len(adjectives))] + "-" +
		colors[rand.IntN(len(colors))] + "-" +
		animals[rand.IntN(len(animals))]
}
