package game

import "math/rand/v2"

// Flavor message pools shown after each answer. Sampled uniformly;
// the strings are fixed and shared by every client.
var correctMessages = []string{
	"You have successfully forded the Chicago River!",
	"Your oxen are well-fed on deep dish pizza!",
	"You found a shortcut through the L tunnel!",
	"A kind stranger shares their Italian beef with your party!",
	"You traded goods at the Magnificent Mile — great deal!",
	"Your wagon made it safely down Lake Shore Drive!",
	"You discovered fresh water at Buckingham Fountain!",
	"The wind at your back speeds you through the prairie!",
}

var wrongMessages = []string{
	"You have died of dysentery near Wrigley Field.",
	"Your wagon broke an axle on Lake Shore Drive.",
	"A thief stole your Italian beef.",
	"You got lost in the L train tunnels for 3 days.",
	"Your oxen were startled by the Bean's reflection.",
	"A blizzard off Lake Michigan buried your wagon.",
	"You tried to ford the Chicago River and lost 2 oxen.",
	"Bandits ambushed you in the Pedway.",
	"Your party ate bad hot dogs at Soldier Field.",
	"The Hawk (wind) blew your supplies into the lake.",
}

func randomMessage(correct bool) string {
	pool := wrongMessages
	if correct {
		pool = correctMessages
	}
	return pool[rand.IntN(len(pool))]
}
