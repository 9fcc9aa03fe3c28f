// Package remesh implements the incremental remeshing driver: the
// tangential-relaxation and split/collapse passes over a halfedge.Store,
// reporting per-pass operation counts through an injected logger rather
// than printing directly.
package remesh

import (
	"io"
	"log"

	"github.com/archmesh/remesh3d"
	"github.com/archmesh/remesh3d/halfedge"
)

// Options configures a Remesher. Sizing is required; Correct and Logger
// are optional.
type Options struct {
	// Sizing supplies the target edge length used by both the split and
	// collapse thresholds.
	Sizing remesh3d.SizingField

	// Correct, if non-nil, re-snaps each relaxed vertex onto a reference
	// surface. A nil Correct disables the step entirely.
	Correct remesh3d.SurfaceFunc

	// Logger receives one line per sub-pass. A nil Logger discards output.
	Logger *log.Logger
}

// Remesher drives the relaxation and incremental-remeshing operators over
// a single halfedge.Store.
type Remesher struct {
	store *halfedge.Store
	opts  Options
}

// New constructs a Remesher over an existing store.
func New(store *halfedge.Store, opts Options) *Remesher {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}
	return &Remesher{store: store, opts: opts}
}

// Store returns the underlying half-edge store.
func (r *Remesher) Store() *halfedge.Store {
	return r.store
}

// TangentialRelaxation runs n passes of two-phase tangential smoothing:
// every interior vertex's new position is computed from the pass's
// starting positions before any vertex is written, so a vertex's update
// never sees another vertex's already-moved position. Boundary vertices
// (BoundaryIndex) are left fixed.
func (r *Remesher) TangentialRelaxation(n int) {
	for pass := 0; pass < n; pass++ {
		vertices := r.store.Vertices()
		updates := make(map[halfedge.VertexHandle]remesh3d.Vector, len(vertices))

		for _, v := range vertices {
			if r.store.Vertex(v).Index <= halfedge.BoundaryIndex || r.store.IsBoundaryVertex(v) {
				continue
			}

			ring := r.store.OneRingVertices(v)
			if len(ring) == 0 {
				continue
			}

			var q remesh3d.Vector
			for _, n := range ring {
				q = q.Add(r.store.Vertex(n).Point)
			}
			q = q.DivScalar(float64(len(ring)))

			p := r.store.Vertex(v).Point
			normal := r.store.VertexNormal(v).Unit()
			relaxed := q.Add(normal.MulScalar(normal.Dot(p.Sub(q))))

			if r.opts.Correct != nil {
				relaxed = r.opts.Correct(relaxed)
			}

			updates[v] = relaxed
		}

		for v, p := range updates {
			r.store.Vertex(v).Point = p
		}

		r.opts.Logger.Printf("tangential relaxation pass %d/%d: %d vertices moved", pass+1, n, len(updates))
	}
}

// IncrementalStats records the operation counts of one IncrementalRelaxation
// call, summed over its passes; the per-pass counts go to the Logger
// instead of being printed directly by the core.
type IncrementalStats struct {
	Passes            int
	InteriorSplits    int
	BoundarySplits    int
	Collapses         int
	RejectedCollapses int
}

// IncrementalRelaxation runs n passes of: split long edges, collapse
// short edges (subject to the inversion and link-condition safety
// checks), then one tangential-relaxation pass.
func (r *Remesher) IncrementalRelaxation(n int) IncrementalStats {
	var stats IncrementalStats
	stats.Passes = n

	for pass := 0; pass < n; pass++ {
		interior, boundary := r.splitPass()
		collapsed, rejected := r.collapsePass()

		stats.InteriorSplits += interior
		stats.BoundarySplits += boundary
		stats.Collapses += collapsed
		stats.RejectedCollapses += rejected

		r.TangentialRelaxation(1)

		r.opts.Logger.Printf(
			"incremental pass %d/%d: %d interior splits, %d boundary splits, %d collapses, %d rejected",
			pass+1, n, interior, boundary, collapsed, rejected,
		)
	}

	return stats
}

func (r *Remesher) splitPass() (interior, boundary int) {
	for _, h := range r.store.HalfEdges() {
		if r.store.IsHalfEdgeRemoved(h) || r.store.HalfEdge(h).IsBoundary() {
			continue
		}

		switch r.store.CheckSplit(h, r.opts.Sizing) {
		case halfedge.InteriorSplit:
			r.store.Split(h)
			interior++
		case halfedge.BoundarySplit:
			r.store.SplitBoundary(h)
			boundary++
		}
	}
	return interior, boundary
}

func (r *Remesher) collapsePass() (collapsed, rejected int) {
	for _, h := range r.store.HalfEdges() {
		if r.store.IsHalfEdgeRemoved(h) {
			continue
		}

		twin := r.store.HalfEdge(h).Twin
		if r.store.IsHalfEdgeRemoved(twin) {
			continue
		}

		if r.store.HalfEdge(h).IsBoundary() || r.store.HalfEdge(twin).IsBoundary() {
			continue
		}

		if !r.store.CheckCollapse(h, r.opts.Sizing) {
			continue
		}

		if !r.store.CanCollapse(h) || !r.store.SatisfiesLinkCondition(h) {
			rejected++
			continue
		}

		r.store.Collapse(h)
		collapsed++
	}
	return collapsed, rejected
}
