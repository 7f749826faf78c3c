package generator

import (
	"math/rand"

	"gridpath/pkg/engine/world"
)

// BSPGenerator generates room-and-corridor maps using Binary Space Partitioning
type BSPGenerator struct {
	rng *rand.Rand
}

// Name returns the name of this generator
func (g *BSPGenerator) Name() string {
	return "BSP Tree"
}

// bspNode represents a node in the BSP tree
type bspNode struct {
	x, y, width, height int
	left, right         *bspNode
	room                *bspRoom
}

// bspRoom represents a room within a BSP leaf node
type bspRoom struct {
	x, y, width, height int
}

func (r *bspRoom) center() world.Coord {
	return world.At(r.y+r.height/2, r.x+r.width/2)
}

// Constants for BSP generation
const (
	minNodeSize = 7 // Minimum size of a BSP node
	minRoomSize = 3 // Minimum size of a room
	roomPadding = 1 // Padding between room and node edge
)

// Generate creates a new grid using the BSP algorithm
func (g *BSPGenerator) Generate(rows, cols int, keepOpen ...world.Coord) *world.Grid {
	grid := world.NewGrid(rows, cols)
	grid.Fill(world.Blocked)

	root := &bspNode{x: 0, y: 0, width: cols, height: rows}
	g.split(root)
	g.createRooms(root)
	carveRooms(grid, root)
	g.connectRooms(grid, root)

	// Tie each kept-open cell into the nearest room so the map stays solvable
	rooms := collectRooms(root)
	for _, c := range keepOpen {
		if !grid.IsValid(c) {
			continue
		}
		grid.Unblock(c)
		if room := nearestRoom(rooms, c); room != nil {
			carveL(grid, c, room.center(), g.rng.Intn(2) == 0)
		}
	}
	connectAll(grid, g.rng, keepOpen)

	return grid
}

// split recursively splits a BSP node
func (g *BSPGenerator) split(node *bspNode) {
	canSplitWidth := node.width >= minNodeSize*2
	canSplitHeight := node.height >= minNodeSize*2

	var splitHorizontal bool
	switch {
	case canSplitWidth && canSplitHeight:
		if node.width == node.height {
			splitHorizontal = g.rng.Intn(2) == 0
		} else {
			splitHorizontal = node.height > node.width
		}
	case canSplitWidth:
		splitHorizontal = false
	case canSplitHeight:
		splitHorizontal = true
	default:
		return
	}

	if splitHorizontal {
		// Split horizontally (top and bottom)
		splitPoint := minNodeSize + g.rng.Intn(node.height-minNodeSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: splitPoint}
		node.right = &bspNode{x: node.x, y: node.y + splitPoint, width: node.width, height: node.height - splitPoint}
	} else {
		// Split vertically (left and right)
		splitPoint := minNodeSize + g.rng.Intn(node.width-minNodeSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: splitPoint, height: node.height}
		node.right = &bspNode{x: node.x + splitPoint, y: node.y, width: node.width - splitPoint, height: node.height}
	}

	g.split(node.left)
	g.split(node.right)
}

// createRooms creates rooms in leaf nodes
func (g *BSPGenerator) createRooms(node *bspNode) {
	if node.left != nil || node.right != nil {
		if node.left != nil {
			g.createRooms(node.left)
		}
		if node.right != nil {
			g.createRooms(node.right)
		}
		return
	}

	maxWidth := node.width - roomPadding
	maxHeight := node.height - roomPadding
	if maxWidth < 1 || maxHeight < 1 {
		return
	}

	roomWidth := maxWidth
	if maxWidth > minRoomSize {
		roomWidth = minRoomSize + g.rng.Intn(maxWidth-minRoomSize+1)
	}
	roomHeight := maxHeight
	if maxHeight > minRoomSize {
		roomHeight = minRoomSize + g.rng.Intn(maxHeight-minRoomSize+1)
	}

	node.room = &bspRoom{
		x:      node.x + g.rng.Intn(node.width-roomWidth+1),
		y:      node.y + g.rng.Intn(node.height-roomHeight+1),
		width:  roomWidth,
		height: roomHeight,
	}
}

// carveRooms opens every room cell
func carveRooms(grid *world.Grid, node *bspNode) {
	if node.room != nil {
		for row := node.room.y; row < node.room.y+node.room.height; row++ {
			for col := node.room.x; col < node.room.x+node.room.width; col++ {
				grid.Unblock(world.At(row, col))
			}
		}
	}

	if node.left != nil {
		carveRooms(grid, node.left)
	}
	if node.right != nil {
		carveRooms(grid, node.right)
	}
}

// connectRooms joins sibling subtrees with L-shaped corridors
func (g *BSPGenerator) connectRooms(grid *world.Grid, node *bspNode) {
	if node.left == nil || node.right == nil {
		return
	}

	leftRoom := g.pickRoom(node.left)
	rightRoom := g.pickRoom(node.right)
	if leftRoom != nil && rightRoom != nil {
		carveL(grid, leftRoom.center(), rightRoom.center(), g.rng.Intn(2) == 0)
	}

	g.connectRooms(grid, node.left)
	g.connectRooms(grid, node.right)
}

// pickRoom returns a room from a subtree (picks randomly between leaves)
func (g *BSPGenerator) pickRoom(node *bspNode) *bspRoom {
	if node.room != nil {
		return node.room
	}

	var leftRoom, rightRoom *bspRoom
	if node.left != nil {
		leftRoom = g.pickRoom(node.left)
	}
	if node.right != nil {
		rightRoom = g.pickRoom(node.right)
	}

	if leftRoom != nil && rightRoom != nil {
		if g.rng.Intn(2) == 0 {
			return leftRoom
		}
		return rightRoom
	}
	if leftRoom != nil {
		return leftRoom
	}
	return rightRoom
}

// collectRooms collects all rooms from the BSP tree
func collectRooms(node *bspNode) []*bspRoom {
	var rooms []*bspRoom

	if node.room != nil {
		rooms = append(rooms, node.room)
	}
	if node.left != nil {
		rooms = append(rooms, collectRooms(node.left)...)
	}
	if node.right != nil {
		rooms = append(rooms, collectRooms(node.right)...)
	}

	return rooms
}

// nearestRoom returns the room whose center is closest to c
func nearestRoom(rooms []*bspRoom, c world.Coord) *bspRoom {
	var best *bspRoom
	bestDist := -1
	for _, r := range rooms {
		d := world.ManhattanDistance(c, r.center())
		if best == nil || d < bestDist {
			best, bestDist = r, d
		}
	}
	return best
}
