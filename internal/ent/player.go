// ent is the demo's entity package
package ent

import (
	"github.com/silbinarywolf/simple2d/internal/app"
	"github.com/silbinarywolf/simple2d/internal/renderer"
	"github.com/silbinarywolf/simple2d/internal/resource"
)

type Player struct {
	// Inputs are the keys held this frame
	Inputs         PlayerInput
	X, Y           float32
	Width, Height  float32
	Hspeed, Vspeed float32
	DirLeft        bool
}

type PlayerInput struct {
	IsHoldingLeft  bool
	IsHoldingRight bool
	IsHoldingJump  bool
}

func (self *Player) Init(sprite *resource.Image) {
	self.Width = float32(sprite.Width())
	self.Height = float32(sprite.Height())
}

// OnGround is true when the player is standing on groundY
func (self *Player) OnGround(groundY float32) bool {
	return self.Y+self.Height+1 > groundY
}

// Update steps the player one frame, groundY is the floor's height in
// window pixels
func (self *Player) Update(groundY float32) (jumped bool) {
	const (
		// maxSpeed is the maximum horizontal speed for the entity
		maxSpeed float32 = 8
		// lubrication is how quickly an entity speeds up if holding down a key per frame
		lubrication float32 = 4
		// fricition is how quickly an entity slows down (ie. ice/slippy)
		friction float32 = 2
		// jumpPower is the initial vspeed to jump at
		jumpPower float32 = 12
		// gravity is applied to vspeed per step
		gravity float32 = 0.45
	)

	// Update via input
	if self.Inputs.IsHoldingLeft {
		if self.Hspeed > 0 {
			self.Hspeed = 0
		}
		self.Hspeed -= lubrication
		self.DirLeft = true
	} else if self.Inputs.IsHoldingRight {
		if self.Hspeed < 0 {
			self.Hspeed = 0
		}
		self.Hspeed += lubrication
		self.DirLeft = false
	}
	if self.Inputs.IsHoldingJump &&
		self.Vspeed >= 0 &&
		self.OnGround(groundY) {
		self.Vspeed = -jumpPower
		jumped = true
	}

	// Update lubrication/friction (X axis)
	if self.Hspeed > 0 {
		self.Hspeed -= friction
		if self.Hspeed < 0 {
			self.Hspeed = 0
		}
		if self.Hspeed > maxSpeed {
			self.Hspeed = maxSpeed
		}
	}
	if self.Hspeed < 0 {
		self.Hspeed += friction
		if self.Hspeed > 0 {
			self.Hspeed = 0
		}
		if self.Hspeed < -maxSpeed {
			self.Hspeed = -maxSpeed
		}
	}
	self.X += self.Hspeed

	// Update gravity (Y axis)
	self.Vspeed += gravity
	if self.Vspeed > 20 {
		// cap fall speed
		self.Vspeed = 20
	}
	self.Y += self.Vspeed
	if self.Y+self.Height > groundY {
		self.Y = groundY - self.Height
		self.Vspeed = 0
	}
	return jumped
}

// Draw draws sprite with an arrow on the side the player faces
func (self *Player) Draw(w *app.Window, sprite *resource.Image) error {
	if err := w.DrawImage(sprite, int(self.X), int(self.Y)); err != nil {
		return err
	}
	arrow := renderer.Color{R: 1, G: 0.8, B: 0.2, A: 1}
	midY := self.Y + self.Height/2
	tipX, baseX := self.X+self.Width+8, self.X+self.Width
	if self.DirLeft {
		tipX, baseX = self.X-8, self.X
	}
	w.DrawTriangle(
		renderer.Vertex{X: baseX, Y: midY - 6, Color: arrow},
		renderer.Vertex{X: tipX, Y: midY, Color: arrow},
		renderer.Vertex{X: baseX, Y: midY + 6, Color: arrow},
	)
	return nil
}
