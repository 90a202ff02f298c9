// SPDX-License-Identifier: MIT

package gf

// conwayTable lists the Conway polynomials of degree >= 2 for every prime
// power below MaxOrder. Each entry holds the coefficients of X^0..X^(n-1)
// of the monic polynomial; the leading 1 is implied.
var conwayTable = map[FieldID][]int{
	{2, 2}:  {1, 1},
	{2, 3}:  {1, 1, 0},
	{2, 4}:  {1, 1, 0, 0},
	{2, 5}:  {1, 0, 1, 0, 0},
	{2, 6}:  {1, 1, 0, 1, 1, 0},
	{2, 7}:  {1, 1, 0, 0, 0, 0, 0},
	{2, 8}:  {1, 0, 1, 1, 1, 0, 0, 0},
	{2, 9}:  {1, 0, 0, 0, 1, 0, 0, 0, 0},
	{2, 10}: {1, 1, 1, 1, 0, 1, 1, 0, 0, 0},
	{2, 11}: {1, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0},
	{2, 12}: {1, 1, 0, 1, 0, 1, 1, 1, 0, 0, 0, 0},
	{2, 13}: {1, 1, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0},
	{2, 14}: {1, 0, 0, 1, 0, 1, 0, 1, 0, 0, 0, 0, 0, 0},
	{2, 15}: {1, 0, 1, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0},

	{3, 2}:  {2, 2},
	{3, 3}:  {1, 2, 0},
	{3, 4}:  {2, 0, 0, 2},
	{3, 5}:  {1, 2, 0, 0, 0},
	{3, 6}:  {2, 2, 1, 0, 2, 0},
	{3, 7}:  {1, 0, 2, 0, 0, 0, 0},
	{3, 8}:  {2, 2, 2, 0, 1, 2, 0, 0},
	{3, 9}:  {1, 1, 2, 2, 0, 0, 0, 0, 0},
	{3, 10}: {2, 1, 0, 0, 2, 2, 2, 0, 0, 0},

	{5, 2}: {2, 4},
	{5, 3}: {3, 3, 0},
	{5, 4}: {2, 4, 4, 0},
	{5, 5}: {3, 4, 0, 0, 0},
	{5, 6}: {2, 0, 1, 4, 1, 0},

	{7, 2}: {3, 6},
	{7, 3}: {4, 0, 6},
	{7, 4}: {3, 4, 5, 0},
	{7, 5}: {4, 1, 0, 0, 0},

	{11, 2}: {2, 7},
	{11, 3}: {9, 2, 0},
	{11, 4}: {2, 10, 8, 0},

	{13, 2}: {2, 12},
	{13, 3}: {11, 2, 0},
	{13, 4}: {2, 12, 3, 0},

	{17, 2}: {3, 16},
	{17, 3}: {14, 1, 0},

	{19, 2}: {2, 18},
	{19, 3}: {17, 4, 0},

	{23, 2}: {5, 21},
	{23, 3}: {18, 2, 0},

	{29, 2}: {2, 24},
	{29, 3}: {27, 2, 0},

	{31, 2}: {3, 29},
	{31, 3}: {28, 1, 0},

	{37, 2}: {2, 33},
	{37, 3}: {35, 6, 0},

	{41, 2}:  {6, 38},
	{43, 2}:  {3, 42},
	{47, 2}:  {5, 45},
	{53, 2}:  {2, 49},
	{59, 2}:  {2, 58},
	{61, 2}:  {2, 60},
	{67, 2}:  {2, 63},
	{71, 2}:  {7, 69},
	{73, 2}:  {5, 70},
	{79, 2}:  {3, 78},
	{83, 2}:  {2, 82},
	{89, 2}:  {3, 82},
	{97, 2}:  {5, 96},
	{101, 2}: {2, 97},
	{103, 2}: {5, 102},
	{107, 2}: {2, 103},
	{109, 2}: {6, 108},
	{113, 2}: {3, 101},
	{127, 2}: {3, 126},
	{131, 2}: {2, 127},
	{137, 2}: {3, 131},
	{139, 2}: {2, 138},
	{149, 2}: {2, 145},
	{151, 2}: {6, 149},
	{157, 2}: {5, 152},
	{163, 2}: {2, 159},
	{167, 2}: {5, 166},
	{173, 2}: {2, 169},
	{179, 2}: {2, 172},
	{181, 2}: {2, 177},
	{191, 2}: {19, 190},
	{193, 2}: {5, 192},
	{197, 2}: {2, 192},
	{199, 2}: {3, 193},
	{211, 2}: {2, 207},
	{223, 2}: {3, 221},
	{227, 2}: {2, 220},
	{229, 2}: {6, 228},
	{233, 2}: {3, 232},
	{239, 2}: {7, 237},
	{241, 2}: {7, 238},
	{251, 2}: {6, 242},
}
