package minicore_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/minicore"
)

func TestBuildQuadBoundary(t *testing.T) {
	tests := []struct {
		name string
		w, h float32
		z    [4]float32
	}{
		{"flat", 64, 32, [4]float32{}},
		{"raised", 10, 10, [4]float32{2, 2, 2, 2}},
		{"tilted", 20, 40, [4]float32{0, 5, 5, 0}},
		{"skewed", 7, 3, [4]float32{-1, 4, 2, 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := minicore.BuildQuad(tt.w, tt.h, tt.z)
			w2, h2 := tt.w/2, tt.h/2

			// Expected corner of each vertex and its Z.
			want := [minicore.VertexCount]minicore.Vertex{
				{X: -w2, Y: -h2, Z: tt.z[0]}, // BL
				{X: w2, Y: h2, Z: tt.z[2]},   // TR
				{X: -w2, Y: h2, Z: tt.z[1]},  // TL
				{X: -w2, Y: -h2, Z: tt.z[0]}, // BL
				{X: w2, Y: -h2, Z: tt.z[3]},  // BR
				{X: w2, Y: h2, Z: tt.z[2]},   // TR
			}
			if q.Vertices != want {
				t.Errorf("vertices:\nhave %v\nwant %v", q.Vertices, want)
			}

			minZ := min(tt.z[0], tt.z[1], tt.z[2], tt.z[3])
			maxZ := max(tt.z[0], tt.z[1], tt.z[2], tt.z[3])
			if q.MinZ != minZ || q.MaxZ != maxZ {
				t.Errorf("z range = [%v, %v], want [%v, %v]", q.MinZ, q.MaxZ, minZ, maxZ)
			}
			if q.MinZ > q.MaxZ {
				t.Errorf("minZ %v > maxZ %v", q.MinZ, q.MaxZ)
			}
		})
	}
}

func TestBuildQuadNormals(t *testing.T) {
	tests := []struct {
		name string
		z    [4]float32
	}{
		{"flat", [4]float32{}},
		{"tilted", [4]float32{0, 5, 5, 0}},
		{"skewed", [4]float32{-1, 4, 2, 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := minicore.BuildQuad(16, 8, tt.z)

			for tri := 0; tri < minicore.VertexCount; tri += 3 {
				n := q.Normals[tri].Vec3()

				if l := n.Len(); math.Abs(float64(l)-1) > 1e-5 {
					t.Errorf("triangle %d: normal length %v", tri/3, l)
				}

				// Flat shading: same normal on all three vertices.
				if q.Normals[tri+1] != q.Normals[tri] || q.Normals[tri+2] != q.Normals[tri] {
					t.Errorf("triangle %d: normals differ: %v", tri/3, q.Normals[tri:tri+3])
				}

				// Perpendicular to both edges.
				v0 := q.Vertices[tri].Vec3()
				e1 := q.Vertices[tri+1].Vec3().Sub(v0)
				e2 := q.Vertices[tri+2].Vec3().Sub(v0)
				if d := n.Dot(e1); math.Abs(float64(d)) > 1e-4 {
					t.Errorf("triangle %d: normal . edge1 = %v", tri/3, d)
				}
				if d := n.Dot(e2); math.Abs(float64(d)) > 1e-4 {
					t.Errorf("triangle %d: normal . edge2 = %v", tri/3, d)
				}
			}
		})
	}
}

func TestBuildQuadFlatNormal(t *testing.T) {
	q := minicore.BuildQuad(30, 10, [4]float32{3, 3, 3, 3})
	for i, n := range q.Normals {
		if n != (minicore.Vertex{X: 0, Y: 0, Z: 1}) {
			t.Errorf("normal %d = %v, want (0,0,1)", i, n)
		}
	}
}

func TestBuildQuadDegenerate(t *testing.T) {
	q := minicore.BuildQuad(0, 10, [4]float32{})
	for i, n := range q.Normals {
		if n != (minicore.Vertex{X: 0, Y: 0, Z: 1}) {
			t.Errorf("normal %d = %v, want (0,0,1)", i, n)
		}
	}
}

func TestBuildQuadDefaults(t *testing.T) {
	q := minicore.BuildQuad(2, 2, [4]float32{})

	want := [minicore.VertexCount]minicore.TexCoord{
		{U: 0, V: 0}, {U: 1, V: 1}, {U: 0, V: 1},
		{U: 0, V: 0}, {U: 1, V: 0}, {U: 1, V: 1},
	}
	if q.TexCoords != want {
		t.Errorf("texcoords:\nhave %v\nwant %v", q.TexCoords, want)
	}
	for i, c := range q.Colors {
		if c != minicore.White {
			t.Errorf("color %d = %v, want white", i, c)
		}
	}
}

func TestRemapTexCoords(t *testing.T) {
	corners := [4]minicore.TexCoord{{U: 0, V: 0}, {U: 1, V: 1}, {U: 0, V: 1}, {U: 1, V: 0}}
	want := [minicore.VertexCount]minicore.TexCoord{
		{U: 0, V: 0}, {U: 1, V: 1}, {U: 0, V: 1},
		{U: 0, V: 0}, {U: 1, V: 0}, {U: 1, V: 1},
	}
	if got := minicore.RemapTexCoords(corners); got != want {
		t.Errorf("RemapTexCoords:\nhave %v\nwant %v", got, want)
	}

	// A sub-rectangle of an atlas keeps the same corner placement.
	atlas := [4]minicore.TexCoord{{U: 0.5, V: 0.25}, {U: 0.75, V: 0.5}, {U: 0.5, V: 0.5}, {U: 0.75, V: 0.25}}
	got := minicore.RemapTexCoords(atlas)
	q := minicore.BuildQuad(4, 4, [4]float32{})
	for i, v := range q.Vertices {
		// Left vertices map to U=0.5, bottom vertices to V=0.25.
		wantU, wantV := float32(0.75), float32(0.5)
		if v.X < 0 {
			wantU = 0.5
		}
		if v.Y < 0 {
			wantV = 0.25
		}
		if got[i] != (minicore.TexCoord{U: wantU, V: wantV}) {
			t.Errorf("vertex %d at %v: texcoord %v, want (%v,%v)", i, v, got[i], wantU, wantV)
		}
	}
}

func TestTransformMatrix(t *testing.T) {
	m := minicore.TransformMatrix(180, mgl32.Vec3{5, 6, 7})
	got := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3()
	want := mgl32.Vec3{4, 6, 7}
	if !got.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("TransformMatrix(180) * (1,0,0) = %v, want %v", got, want)
	}
}
