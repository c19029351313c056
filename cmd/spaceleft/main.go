package main

import "spaceleft/internal/game"

func main() {
	game.RunDesktop()
}
