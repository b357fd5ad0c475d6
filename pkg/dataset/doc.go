// Package dataset reads a YCB-Video style dataset from disk.
//
// The expected layout is:
//
//	<root>/data/0000/000001-color.png
//	<root>/data/0000/000001-depth.png
//	<root>/data/0000/000001-label.png
//	<root>/data/0000/000001-box.txt
//	<root>/data/0000/000001-meta.mat
//	<root>/data_syn/000001-color.png
//	...
//
// Inventory lists the sequences and classifies the frames of a sequence as
// complete or incomplete according to a Policy. Materializer loads the files
// of one frame into a domain.Frame.
//
// # Usage
//
//	policy := dataset.DefaultPolicy()
//	inv := dataset.NewInventory("/data/ycbvideo", policy, logger)
//	sets, err := inv.FrameSets(ctx, "0001")
//	if err != nil {
//	    return err
//	}
//
//	m := dataset.NewMaterializer("/data/ycbvideo", policy, logger)
//	frame, err := m.LoadFrame(ctx, domain.Descriptor{Sequence: "0001", Frame: sets.Complete[0]})
package dataset
