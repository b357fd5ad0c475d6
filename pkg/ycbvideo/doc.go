// Package ycbvideo provides lazy, selective access to a YCB-Video style
// frame dataset.
//
// Frames are selected with expressions of the form
// "<sequence-part>/<frame-part>", see package selection for the syntax.
//
// # Basic Usage
//
//	loader, err := ycbvideo.New(ycbvideo.Config{DatasetRoot: "/data/ycbvideo"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	frames, err := loader.Frames(ctx, []string{"1/*", "2/[2,3,5]", "data_syn/1"}, false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	it := frames.Iter()
//	for {
//	    frame, err := it.Next(ctx)
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    // Use frame.Color, frame.Depth, frame.Label, frame.Boxes...
//	}
//
// # Completeness
//
// A frame is complete when every file its [Policy] expects is present.
// Selecting an incomplete frame fails with [*IncompleteFrameError]; the
// default policy is [DefaultPolicy] and can be changed with [WithPolicy].
//
// # Shuffling
//
// Pass shuffle=true to [Loader.Frames] to permute the selection. Use
// [WithSeed] for a reproducible order.
//
// # Dependency Injection
//
// For testing, the filesystem can be replaced:
//
//	loader, err := ycbvideo.New(cfg,
//	    ycbvideo.WithInventory(fakeInventory),
//	    ycbvideo.WithFrameLoader(fakeLoader),
//	)
package ycbvideo
