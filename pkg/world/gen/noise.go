package gen

// 2D simplex noise after Ken Perlin's reference algorithm.
// Noise2D produces values in the range [-1, 1].

// grad2 are the gradient directions for 2D simplex noise.
var grad2 = [12][2]float64{
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
	{1, 0}, {-1, 0}, {1, 0}, {-1, 0},
	{0, 1}, {0, -1}, {0, 1}, {0, -1},
}

// simplexNoise is a permutation-table simplex noise field.
type simplexNoise struct {
	perm [512]int
}

// newSimplexNoise shuffles the permutation table with draws from src.
func newSimplexNoise(src *Source) *simplexNoise {
	n := &simplexNoise{}

	var p [256]int
	for i := range p {
		p[i] = i
	}
	// Fisher-Yates.
	for i := 255; i > 0; i-- {
		j := src.IntN(i + 1)
		p[i], p[j] = p[j], p[i]
	}

	// Doubled so lookups never need to wrap.
	for i := range n.perm {
		n.perm[i] = p[i&255]
	}
	return n
}

// Noise2D returns simplex noise at (x, y) in [-1, 1].
func (n *simplexNoise) Noise2D(x, y float64) float64 {
	const (
		f2 = 0.36602540378443864676 // (sqrt(3) - 1) / 2
		g2 = 0.21132486540518711775 // (3 - sqrt(3)) / 6
	)

	s := (x + y) * f2
	i := fastFloor(x + s)
	j := fastFloor(y + s)

	t := float64(i+j) * g2
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)

	// Upper or lower triangle of the skewed cell.
	var i1, j1 int
	if x0 > y0 {
		i1 = 1
	} else {
		j1 = 1
	}

	x1 := x0 - float64(i1) + g2
	y1 := y0 - float64(j1) + g2
	x2 := x0 - 1.0 + 2.0*g2
	y2 := y0 - 1.0 + 2.0*g2

	ii := i & 255
	jj := j & 255
	gi0 := n.perm[ii+n.perm[jj]] % 12
	gi1 := n.perm[ii+i1+n.perm[jj+j1]] % 12
	gi2 := n.perm[ii+1+n.perm[jj+1]] % 12

	return 70.0 * (corner(gi0, x0, y0) + corner(gi1, x1, y1) + corner(gi2, x2, y2))
}

// OctaveNoise2D sums octaves of Noise2D, each at double the frequency and
// persistence times the amplitude of the previous one. The result is
// normalised back into [-1, 1].
func (n *simplexNoise) OctaveNoise2D(x, y float64, octaves int, persistence float64) float64 {
	var total, maxVal float64
	frequency, amplitude := 1.0, 1.0

	for range octaves {
		total += n.Noise2D(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2.0
	}
	return total / maxVal
}

// corner is the contribution of one simplex corner.
func corner(gi int, x, y float64) float64 {
	t := 0.5 - x*x - y*y
	if t < 0 {
		return 0
	}
	t *= t
	return t * t * (grad2[gi][0]*x + grad2[gi][1]*y)
}

func fastFloor(x float64) int {
	xi := int(x)
	if x < float64(xi) {
		return xi - 1
	}
	return xi
}
