// alignsweep renders the overlay layout across a sweep of card rotations and
// writes one WebP snapshot per angle, for eyeballing how far the approximate
// container drifts from the card mid-flip.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	"checkout3d/internal/overlay"
	"checkout3d/internal/scene"
	"checkout3d/internal/snapshot"
	"checkout3d/internal/theme"
)

func main() {
	steps := flag.Int("steps", 36, "Number of rotation steps over a full turn")
	size := flag.Int("size", 512, "Snapshot size in pixels (square)")
	outputDir := flag.String("output", "sweep-out", "Output directory")
	themeName := flag.String("theme", theme.DefaultTheme, "Theme preset")
	oriented := flag.Bool("oriented", false, "Use exact rotated-corner bounds instead of the approximation")
	workers := flag.Int("workers", 4, "Number of worker goroutines")
	flag.Parse()

	if *steps <= 0 || *size <= 0 || *workers <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -steps, -size and -workers must be positive")
		os.Exit(1)
	}
	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output dir: %v\n", err)
		os.Exit(1)
	}

	t, ok := theme.Lookup(*themeName)
	if !ok {
		t, _ = theme.Lookup(theme.DefaultTheme)
	}

	fmt.Printf("Overlay alignment sweep: %d steps, %dx%d, oriented=%v\n", *steps, *size, *size, *oriented)
	fmt.Printf("Output: %s\n", *outputDir)

	start := time.Now()
	errs := make([]error, *steps)

	idxChan := make(chan int, *workers*2)
	var wg sync.WaitGroup
	for w := 0; w < *workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Each worker owns a stage: node transforms are mutated per step.
			st := scene.NewStage(float64(*size), float64(*size))
			eng := overlay.NewEngine(overlay.DefaultRegions())
			eng.UseOrientedBounds = *oriented
			for i := range idxChan {
				errs[i] = renderStep(st, eng, t, i, *steps, *size, *outputDir)
			}
		}()
	}
	for i := 0; i < *steps; i++ {
		idxChan <- i
	}
	close(idxChan)
	wg.Wait()

	failed := 0
	for i, err := range errs {
		if err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "  step %d: %v\n", i, err)
		}
	}
	fmt.Printf("Done in %.1fs, %d/%d snapshots\n", time.Since(start).Seconds(), *steps-failed, *steps)
	if failed > 0 {
		os.Exit(1)
	}
}

func renderStep(st *scene.Stage, eng *overlay.Engine, t theme.Theme, i, steps, size int, outDir string) error {
	st.Card().Rotation[1] = 2 * math.Pi * float64(i) / float64(steps)

	vw, vh := st.Viewport()
	layout, ok := eng.ComputeLayout(st.Card(), st.HalfExtents(), st.Camera(), vw, vh)
	if !ok {
		return fmt.Errorf("layout unavailable at step %d", i)
	}

	img := snapshot.Render(layout, t, size, size)
	name := fmt.Sprintf("angle_%03d.webp", i*360/steps)
	return snapshot.WriteWebP(filepath.Join(outDir, name), img)
}
