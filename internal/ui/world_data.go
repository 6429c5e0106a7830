package ui

// worldCoastlines holds simplified continent and island outlines as
// polylines of [lat, lon] points, coarse enough to stroke every frame.
var worldCoastlines = [][][2]float64{
	// North America (closed loop)
	{
		{70, -160}, {66, -164}, {61, -166}, {59, -158}, {58, -152},
		{60, -146}, {60, -140}, {57, -136}, {54, -131}, {49, -125},
		{43, -124}, {40, -124}, {37, -122}, {34, -119}, {32, -117},
		{28, -114}, {23, -110}, {20, -105}, {17, -101}, {15, -94},
		{13, -91}, {10, -86}, {8, -82}, {9, -79},
		// Caribbean coast, Gulf of Mexico, Atlantic seaboard
		{11, -84}, {15, -83}, {16, -88}, {21, -87}, {19, -91},
		{22, -97}, {26, -97}, {29, -94}, {30, -89}, {29, -84},
		{27, -82}, {25, -80}, {28, -80}, {32, -80}, {35, -75},
		{38, -75}, {40, -73}, {42, -70}, {44, -67}, {45, -64},
		{44, -60}, {46, -60}, {47, -52}, {50, -56}, {53, -55},
		{55, -59}, {58, -62}, {61, -64}, {64, -66}, {66, -74},
		{68, -81}, {70, -86}, {69, -95}, {70, -105}, {69, -115},
		{70, -125}, {69, -135}, {70, -145}, {71, -156}, {70, -160},
	},
	// South America (closed loop)
	{
		{11, -74}, {8, -77}, {4, -77}, {1, -79}, {-3, -80},
		{-6, -81}, {-10, -78}, {-14, -76}, {-18, -70}, {-23, -70},
		{-27, -71}, {-33, -72}, {-37, -73}, {-42, -74}, {-47, -74},
		{-52, -74}, {-54, -71}, {-52, -68}, {-48, -66}, {-43, -65},
		{-39, -62}, {-36, -57}, {-34, -53}, {-30, -50}, {-25, -48},
		{-23, -43}, {-20, -40}, {-15, -39}, {-13, -38}, {-8, -35},
		{-5, -35}, {-3, -39}, {-1, -44}, {0, -50}, {4, -52},
		{6, -56}, {8, -60}, {10, -62}, {11, -64}, {12, -70},
		{11, -74},
	},
	// Africa (closed loop)
	{
		{35, -6}, {37, 3}, {37, 10}, {33, 11}, {31, 16},
		{32, 20}, {31, 25}, {31, 30}, {31, 32}, {27, 34},
		{22, 37}, {18, 39}, {15, 40}, {13, 43}, {12, 44},
		{11, 49}, {12, 51}, {8, 50}, {2, 46}, {-2, 43},
		{-5, 39}, {-9, 39}, {-15, 40}, {-20, 35}, {-24, 35},
		{-26, 33}, {-29, 32}, {-32, 29}, {-34, 26}, {-35, 20},
		{-33, 18}, {-29, 17}, {-26, 15}, {-22, 14}, {-18, 12},
		{-12, 13}, {-8, 13}, {-5, 12}, {-1, 9}, {2, 9},
		{4, 6}, {4, 1}, {5, -4}, {5, -8}, {7, -13},
		{11, -16}, {15, -17}, {18, -16}, {21, -17}, {25, -15},
		{28, -13}, {31, -10}, {33, -8}, {35, -6},
	},
	// Eurasia (closed loop, Arctic coast clamped before the antimeridian)
	{
		{36, -9}, {39, -9}, {43, -9}, {44, -2}, {48, -5},
		{49, 0}, {51, 2}, {53, 5}, {54, 9}, {56, 8},
		{57, 11}, {59, 11}, {58, 6}, {61, 5}, {63, 8},
		{66, 13}, {68, 16}, {70, 22}, {71, 27}, {70, 30},
		{68, 40}, {66, 41}, {68, 44}, {67, 47}, {68, 54},
		{71, 57}, {73, 70}, {72, 80}, {74, 87}, {76, 100},
		{74, 113}, {73, 125}, {72, 140}, {70, 150}, {69, 162},
		{67, 172}, {66, 178},
		// Pacific coast southbound
		{64, 178}, {62, 177}, {60, 170}, {62, 165}, {60, 162},
		{57, 162}, {53, 158}, {51, 157}, {55, 155}, {59, 152},
		{60, 143}, {57, 140}, {54, 137}, {49, 140}, {46, 138},
		{43, 132}, {40, 128}, {39, 127}, {35, 126}, {38, 125},
		{39, 122}, {37, 122}, {34, 120}, {31, 122}, {28, 121},
		{24, 118}, {22, 114}, {21, 110}, {21, 108}, {18, 106},
		{16, 108}, {12, 109}, {9, 105}, {10, 104}, {13, 100},
		{9, 100}, {6, 100}, {1, 104}, {4, 100}, {8, 98},
		{10, 98}, {14, 98}, {16, 94}, {18, 94}, {22, 91},
		{21, 89}, {22, 88}, {20, 86}, {16, 82}, {13, 80},
		{10, 80}, {8, 78}, {9, 76}, {13, 74}, {17, 73},
		{21, 70}, {22, 72}, {24, 68}, {25, 66}, {25, 62},
		{26, 57}, {24, 54}, {26, 56}, {30, 49}, {29, 48},
		{27, 50}, {24, 52}, {22, 59}, {18, 58}, {14, 53},
		{13, 45}, {16, 42}, {20, 40}, {25, 37}, {28, 35},
		{30, 32}, {31, 33}, {34, 35}, {36, 36},
		// Mediterranean north shore back to Iberia
		{37, 28}, {40, 26}, {38, 22}, {40, 19}, {45, 13},
		{41, 16}, {38, 16}, {43, 10}, {43, 7}, {41, 3},
		{39, 0}, {37, -2}, {36, -6}, {36, -9},
	},
	// Australia (closed loop)
	{
		{-12, 131}, {-12, 136}, {-11, 142}, {-16, 146}, {-20, 149},
		{-25, 153}, {-28, 154}, {-33, 152}, {-37, 150}, {-39, 146},
		{-38, 141}, {-35, 138}, {-32, 134}, {-33, 124}, {-34, 115},
		{-31, 115}, {-26, 113}, {-22, 114}, {-18, 122}, {-14, 126},
		{-12, 131},
	},
	// Greenland (closed loop)
	{
		{60, -43}, {63, -41}, {68, -32}, {70, -22}, {76, -19},
		{80, -17}, {83, -30}, {82, -50}, {78, -68}, {76, -60},
		{73, -57}, {70, -54}, {65, -53}, {60, -43},
	},
	// British Isles
	{
		{50, -5}, {51, 1}, {53, 0}, {55, -2}, {57, -2},
		{58, -5}, {55, -6}, {53, -4}, {50, -5},
	},
	// Japan
	{
		{31, 131}, {33, 131}, {35, 136}, {37, 138}, {39, 140},
		{41, 141}, {43, 141}, {45, 142},
	},
	// Madagascar
	{
		{-12, 49}, {-16, 50}, {-22, 48}, {-25, 47}, {-22, 43},
		{-16, 44}, {-12, 49},
	},
	// Sumatra and Java
	{
		{6, 95}, {2, 99}, {-3, 102}, {-6, 105}, {-6, 106},
		{-7, 110}, {-8, 114},
	},
	// Borneo
	{
		{1, 109}, {4, 114}, {1, 119}, {-3, 116}, {-2, 110},
		{1, 109},
	},
	// New Guinea
	{
		{-1, 131}, {-4, 137}, {-7, 142}, {-9, 147},
	},
	// New Zealand
	{
		{-34, 173}, {-37, 175}, {-41, 175}, {-42, 173}, {-44, 171},
		{-46, 168},
	},
}
