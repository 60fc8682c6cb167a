package models

// ItemCreate is the request body for adding an item
type ItemCreate struct {
	Content string `json:"content"`
	Image   string `json:"image,omitempty"` // data URL or remote URL
}

// ItemMove is the request body for moving an item between containers
type ItemMove struct {
	From ContainerID `json:"from"`
	To   ContainerID `json:"to"`
}

// ItemReorder is the request body for reordering within a container
type ItemReorder struct {
	OverID string `json:"over_id"`
}

// Point is a pointer position on the drag surface
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is the bounding box of a droppable region
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Droppable is a region the pointer can hover, addressed by an item id or drop key
type Droppable struct {
	ID   string `json:"id"`
	Rect Rect   `json:"rect"`
}

// DragStart is the request body for beginning a gesture
type DragStart struct {
	ActiveID string `json:"active_id"`
}

// DragHover is the request body for a hover update. Either OverID is set
// directly, or Pointer and Droppables are given and the target is detected.
type DragHover struct {
	OverID     string      `json:"over_id,omitempty"`
	Pointer    *Point      `json:"pointer,omitempty"`
	Droppables []Droppable `json:"droppables,omitempty"`
}

// DragStatus describes the live gesture
type DragStatus struct {
	Phase    string      `json:"phase"`
	ActiveID string      `json:"active_id,omitempty"`
	Source   ContainerID `json:"source,omitempty"`
}

// ShareCreated is the response body for a published share
type ShareCreated struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// ImageIngested is the response body for an ingested image
type ImageIngested struct {
	Image  string `json:"image"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Bytes  int    `json:"bytes"`
}
