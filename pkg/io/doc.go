// Package io saves built dependency graphs as JSON and reads them back.
//
// # JSON Format
//
//	{
//	  "root": "pkgA:pkgA:1.0.0",
//	  "nodes": [
//	    {"id": "pkgA:pkgA:1.0.0", "group": "pkgA", "artifact": "pkgA", "version": "1.0.0", "expanded": true},
//	    {"id": "pkgB:pkgB:1.0.0", "group": "pkgB", "artifact": "pkgB", "version": "1.0.0", "expanded": false}
//	  ],
//	  "edges": [
//	    {"from": "pkgA:pkgA:1.0.0", "to": "pkgB:pkgB:1.0.0"}
//	  ],
//	  "stats": {"expanded": 1, "failed": 0, "filtered": 0, "depth": 1}
//	}
//
// Edges are the graph's edge list, in key insertion order with duplicates kept.
// A node with "expanded": false was discovered but not queried (depth limit).
//
// A saved document can be rendered again without contacting a repository:
//
//	doc, err := io.ImportJSON("graph.json")
//	dot := nodelink.ToDOT(doc.Edges, nodelink.Options{Root: doc.Root})
package io
