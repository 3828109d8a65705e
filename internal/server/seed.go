package server

// StockQuizzes returns the built-in quiz catalog: three boards of eight
// songs each. The dummy entries exist only as decoy buttons.
func StockQuizzes() []Quiz {
	return []Quiz{
		{
			Name: "90s Pop Hits",
			Songs: []Song{
				{Title: "Run the World (Girls)", Artist: "Beyoncé", ButtonText: "Girl Power", SongURI: "spotify:track:1uXbwHHfgsXcUKfSZw5ZJ0"},
				{Title: "Bitter Sweet Symphony", Artist: "The Verve", ButtonText: "Vertical Stripes", SongURI: "spotify:track:0VjIjW4GlUZAMYd2vXMwbv"},
				{Title: "Creep", Artist: "Radiohead", ButtonText: "Strange & Alone", SongURI: "spotify:track:7qiZfU4dY1lsylvNEJsQBN"},
				{Title: "No Scrubs", Artist: "TLC", ButtonText: "No Time Wasters", SongURI: "spotify:track:7vfY5bYw82h8wJvuLJ3u4A"},
				{Title: "Sabotage", Artist: "Beastie Boys", ButtonText: "Beastie Chaos", SongURI: "spotify:track:5E8zLLKmKVD0Ib7Zj0Yolw"},
				{Title: "Zombie", Artist: "The Cranberries", ButtonText: "Irish Undead", SongURI: "spotify:track:7qwnYvJn6K0f0d1FQHD5Q2"},
				{Title: "Dummy Track 1", Artist: "N/A", ButtonText: "Red Herring", IsDummy: true},
				{Title: "Dummy Track 2", Artist: "N/A", ButtonText: "False Lead", IsDummy: true},
			},
		},
		{
			Name: "Taylor Swift Essentials",
			Songs: []Song{
				{Title: "Shake It Off", Artist: "Taylor Swift", ButtonText: "Dance Move", SongURI: "spotify:track:2takcwgKJJvtabVR4UJgPd"},
				{Title: "Love Story", Artist: "Taylor Swift", ButtonText: "Romeo & Juliet", SongURI: "spotify:track:0DiWxABG7uwpf8Tn5pjnwJ"},
				{Title: "You Belong With Me", Artist: "Taylor Swift", ButtonText: "Country Love", SongURI: "spotify:track:4cOdK2wGLETKBW3PvgPWqV"},
				{Title: "Blank Space", Artist: "Taylor Swift", ButtonText: "New Lover Lesson", SongURI: "spotify:track:1301WleyT98MSxVHPZCA6M"},
				{Title: "Anti-Hero", Artist: "Taylor Swift", ButtonText: "Self Reflection", SongURI: "spotify:track:0VjIjW4GlUZAMYd2vXMwbv"},
				{Title: "Look What You Made Me Do", Artist: "Taylor Swift", ButtonText: "Revenge Anthem", SongURI: "spotify:track:2s0J3w47u6K0qJpHnFkRRa"},
				{Title: "Dummy Track 1", Artist: "N/A", ButtonText: "Red Herring", IsDummy: true},
				{Title: "Dummy Track 2", Artist: "N/A", ButtonText: "False Lead", IsDummy: true},
			},
		},
		{
			Name: "Party Bangers",
			Songs: []Song{
				{Title: "Blinding Lights", Artist: "The Weeknd", ButtonText: "Night Drive", SongURI: "spotify:track:0VjIjW4GlUZAMYd2vXMwbv"},
				{Title: "Don't Start Now", Artist: "Dua Lipa", ButtonText: "Disco Groove", SongURI: "spotify:track:7qiZfU4dY1lsylvNEJsQBN"},
				{Title: "Levitating", Artist: "Dua Lipa", ButtonText: "Float Away", SongURI: "spotify:track:3haSDcrQBJcFQlqTHMAx0b"},
				{Title: "Heat Waves", Artist: "Glass Animals", ButtonText: "Desert Mirage", SongURI: "spotify:track:4cOdK2wGLETKBW3PvgPWqV"},
				{Title: "Uptown Funk", Artist: "Mark Ronson ft. Bruno Mars", ButtonText: "Retro Funk", SongURI: "spotify:track:0DiWxABG7uwpf8Tn5pjnwJ"},
				{Title: "One Dance", Artist: "Drake ft. Wizkid & Kyla", ButtonText: "Two Step", SongURI: "spotify:track:1301WleyT98MSxVHPZCA6M"},
				{Title: "Dummy Track 1", Artist: "N/A", ButtonText: "Red Herring", IsDummy: true},
				{Title: "Dummy Track 2", Artist: "N/A", ButtonText: "False Lead", IsDummy: true},
			},
		},
	}
}
