package minicore_test

import (
	"testing"
	"unsafe"

	"github.com/go-theft-auto/minicore"
)

func TestSurfaceLayoutSize(t *testing.T) {
	l := minicore.SurfaceLayout()

	vertex := int(unsafe.Sizeof(minicore.Vertex{}))
	texCoord := int(unsafe.Sizeof(minicore.TexCoord{}))
	want := 6*(vertex+vertex+texCoord) + 6*4*4
	if l.Size() != want {
		t.Errorf("Size() = %d, want %d", l.Size(), want)
	}
	if l.Size() != 288 {
		t.Errorf("Size() = %d, want 288", l.Size())
	}
	if l.Vertices() != minicore.VertexCount {
		t.Errorf("Vertices() = %d", l.Vertices())
	}
}

func TestLayoutRegions(t *testing.T) {
	l := minicore.SurfaceLayout()

	tests := []struct {
		region minicore.Region
		want   minicore.Attribute
	}{
		{minicore.RegionPosition, minicore.Attribute{Slot: minicore.SlotPosition, Components: 3, Offset: 0, Size: 72}},
		{minicore.RegionNormal, minicore.Attribute{Slot: minicore.SlotNormal, Components: 3, Offset: 72, Size: 72}},
		{minicore.RegionTexCoord, minicore.Attribute{Slot: minicore.SlotTexCoord, Components: 2, Offset: 144, Size: 48}},
		{minicore.RegionColor, minicore.Attribute{Slot: minicore.SlotColor, Components: 4, Offset: 192, Size: 96}},
	}
	for _, tt := range tests {
		t.Run(tt.region.String(), func(t *testing.T) {
			if got := l.Attribute(tt.region); got != tt.want {
				t.Errorf("Attribute(%v) = %+v, want %+v", tt.region, got, tt.want)
			}
		})
	}

	// Regions are contiguous and cover the buffer.
	last := l.Attribute(minicore.RegionColor)
	if last.Offset+last.Size != l.Size() {
		t.Errorf("regions end at %d, buffer is %d bytes", last.Offset+last.Size, l.Size())
	}
}

func TestLayoutScalesWithVertices(t *testing.T) {
	l := minicore.NewLayout(12)
	if got, want := l.Size(), 2*minicore.SurfaceLayout().Size(); got != want {
		t.Errorf("Size() = %d, want %d", got, want)
	}
	if got := l.Attribute(minicore.RegionTexCoord).Offset; got != 288 {
		t.Errorf("texcoord offset = %d, want 288", got)
	}
}
