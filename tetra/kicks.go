package tetra

// Wall-kick candidate offsets, tried in order until one yields a
// non-colliding placement. These are the guideline SRS tables translated to
// this package's axes (Y grows downward), indexed by the rotation state the
// turn starts from.

var jlstzKicksCW = [4][5]Cell{
	{{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
}

var jlstzKicksCCW = [4][5]Cell{
	{{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
}

var iKicksCW = [4][5]Cell{
	{{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
	{{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
	{{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
	{{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
}

var iKicksCCW = [4][5]Cell{
	{{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
	{{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
	{{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
	{{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
}

func kickOffsets(k Kind, from int, clockwise bool) [5]Cell {
	if k == KindI {
		if clockwise {
			return iKicksCW[from]
		}
		return iKicksCCW[from]
	}
	if clockwise {
		return jlstzKicksCW[from]
	}
	return jlstzKicksCCW[from]
}
