package board

// DefaultTemplate returns the built-in 5x5 dataset. Rooms use it unless the
// server was started with an external dataset file.
func DefaultTemplate() []CategoryTemplate {
	return []CategoryTemplate{
		{
			Name: "Science",
			Questions: []QuestionTemplate{
				{Value: 200, Clue: "This force keeps planets in orbit around the sun.", Answer: "gravity"},
				{Value: 400, Clue: "The chemical symbol for gold.", Answer: "Au"},
				{Value: 600, Clue: "The organelle known as \"the powerhouse of the cell\".", Answer: "mitochondria"},
				{Value: 800, Clue: "The number of chromosomes in a normal human body cell.", Answer: "46"},
				{Value: 1000, Clue: "Einstein's equation relating energy, mass, and light speed.", Answer: "E = mc²"},
			},
		},
		{
			Name: "History",
			Questions: []QuestionTemplate{
				{Value: 200, Clue: "The year World War II ended.", Answer: "1945"},
				{Value: 400, Clue: "The first president of the United States.", Answer: "George Washington"},
				{Value: 600, Clue: "The ancient wonder of the world located in Egypt.", Answer: "Pyramids of Giza"},
				{Value: 800, Clue: "The year the Berlin Wall fell.", Answer: "1989"},
				{Value: 1000, Clue: "The Roman emperor who converted the empire to Christianity.", Answer: "Constantine"},
			},
		},
		{
			Name: "Geography",
			Questions: []QuestionTemplate{
				{Value: 200, Clue: "The largest continent by area.", Answer: "Asia"},
				{Value: 400, Clue: "The capital city of Australia.", Answer: "Canberra"},
				{Value: 600, Clue: "The longest river in the world.", Answer: "Nile"},
				{Value: 800, Clue: "The country that contains the most lakes.", Answer: "Canada"},
				{Value: 1000, Clue: "The smallest country in the world by area.", Answer: "Vatican City"},
			},
		},
		{
			Name: "Pop Culture",
			Questions: []QuestionTemplate{
				{Value: 200, Clue: "The boy wizard created by J.K. Rowling.", Answer: "Harry Potter"},
				{Value: 400, Clue: "The streaming service behind \"Stranger Things\".", Answer: "Netflix"},
				{Value: 600, Clue: "The band behind \"Bohemian Rhapsody\".", Answer: "Queen"},
				{Value: 800, Clue: "The director of Inception and Interstellar.", Answer: "Christopher Nolan"},
				{Value: 1000, Clue: "The fictional kingdom in Disney's \"Frozen\".", Answer: "Arendelle"},
			},
		},
		{
			Name: "Sports",
			Questions: []QuestionTemplate{
				{Value: 200, Clue: "The sport played at Wimbledon.", Answer: "tennis"},
				{Value: 400, Clue: "Number of players per team on a basketball court.", Answer: "5"},
				{Value: 600, Clue: "Country that invented the ancient Olympic Games.", Answer: "Greece"},
				{Value: 800, Clue: "The most decorated Olympian of all time.", Answer: "Michael Phelps"},
				{Value: 1000, Clue: "Number of holes in a standard golf course.", Answer: "18"},
			},
		},
	}
}
