// Package quadrant implements the area decomposition used by the segmented
// solver: the plane is bisected at the midpoint of the cities' bounding box
// on both axes, every city is assigned to exactly one of the four resulting
// quadrants, and four boundary anchors are chosen to chain the per-quadrant
// open paths into one cycle.
//
// Quadrant numbering (Y grows upward):
//
//	  4 (upper-left)  │ 3 (upper-right)
//	 ─────────────────┼─────────────────
//	  1 (lower-left)  │ 2 (lower-right)
//
// Anchors and the quadrant each path runs through:
//
//	Q1: Left → Top     Q2: Top → Right     Q3: Right → Bottom     Q4: Bottom → Left
//
// Left and Top are cities of quadrant 1, Right and Bottom cities of quadrant 3.
package quadrant
