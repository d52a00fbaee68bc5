package systems

import (
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases toward a navigation target when one is set and follows
// the player otherwise. Arriving at a target snaps the player onto the
// pending screen.
func UpdateCamera(e *ecs.ECS) {
	camera, ok := cameraOf(e)
	if !ok {
		return
	}

	if camera.Navigating() {
		if camera.Ease() {
			if id := camera.TakePending(); id != "" {
				SnapSpawnToScreen(e, id)
			}
		}
		return
	}

	_, player, ok := playerOf(e)
	if !ok {
		return
	}
	camera.Follow(player.Y + player.H/2)
}
