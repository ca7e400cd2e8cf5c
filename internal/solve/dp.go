package solve

import (
	"math"

	"fleet-vrp/internal/geo"
	"fleet-vrp/internal/model"
	"fleet-vrp/internal/solution"
)

// transitionKind records which of the two DP moves produced a cell, so the
// winning route can be rebuilt by walking parent pointers backward from the
// final state.
type transitionKind int

const (
	noTransition transitionKind = iota
	extendTransition
	rolloverEmptyTransition
	rolloverStopTransition
)

type dpCell struct {
	value       float64
	kind        transitionKind
	prevMask    int
	prevVehicle int
	prevCur     int
}

// DynamicProgrammingSolver is an exact solver over the bitmask DP table
// dp[visited_set][vehicle][current_stop]. current_stop 0 is the sentinel
// "no stop taken yet, positioned at the vehicle's start depot"; current
// stop index k+1 means the vehicle's frontier is stop k. Intended for
// stop counts up to roughly 12, since the table is O(2^N · V · N).
type DynamicProgrammingSolver struct {
	Router geo.Router
}

// NewDynamicProgrammingSolver builds a DynamicProgrammingSolver over router.
func NewDynamicProgrammingSolver(router geo.Router) *DynamicProgrammingSolver {
	return &DynamicProgrammingSolver{Router: router}
}

// Solve implements Solver.
func (d *DynamicProgrammingSolver) Solve(view model.View) solution.Solution {
	vehicleCount := view.VehicleCount()
	if vehicleCount == 0 {
		return solution.Solution{}
	}

	stopCount := view.StopCount()
	fullMask := (1 << uint(stopCount)) - 1
	curDim := stopCount + 1

	dp := make([][][]dpCell, fullMask+1)
	for mask := range dp {
		dp[mask] = make([][]dpCell, vehicleCount)
		for v := range dp[mask] {
			dp[mask][v] = make([]dpCell, curDim)
			for c := range dp[mask][v] {
				dp[mask][v][c] = dpCell{value: math.Inf(1)}
			}
		}
	}
	dp[0][0][0] = dpCell{value: 0}

	frontierLocation := func(v, cur int) model.Location {
		if cur == 0 {
			return view.Location(view.VehicleStartLocation(v))
		}
		return view.Location(view.StopLocation(cur - 1))
	}

	relax := func(mask, v, cur int, value float64, kind transitionKind, prevMask, prevVehicle, prevCur int) {
		if value < dp[mask][v][cur].value {
			dp[mask][v][cur] = dpCell{value: value, kind: kind, prevMask: prevMask, prevVehicle: prevVehicle, prevCur: prevCur}
		}
	}

	for mask := 0; mask <= fullMask; mask++ {
		for v := 0; v < vehicleCount; v++ {
			for cur := 0; cur < curDim; cur++ {
				cell := dp[mask][v][cur]
				if math.IsInf(cell.value, 1) {
					continue
				}

				from := frontierLocation(v, cur)

				for k := 0; k < stopCount; k++ {
					if mask&(1<<uint(k)) != 0 {
						continue
					}
					leg := d.Router.Route(from, view.Location(view.StopLocation(k)))
					relax(mask|(1<<uint(k)), v, k+1, cell.value+leg, extendTransition, mask, v, cur)
				}

				if v+1 < vehicleCount {
					closeLeg := d.Router.Route(from, view.Location(view.VehicleEndLocation(v)))
					closed := cell.value + closeLeg

					relax(mask, v+1, 0, closed, rolloverEmptyTransition, mask, v, cur)

					nextStart := view.Location(view.VehicleStartLocation(v + 1))
					for k := 0; k < stopCount; k++ {
						if mask&(1<<uint(k)) != 0 {
							continue
						}
						leg := d.Router.Route(nextStart, view.Location(view.StopLocation(k)))
						relax(mask|(1<<uint(k)), v+1, k+1, closed+leg, rolloverStopTransition, mask, v, cur)
					}
				}
			}
		}
	}

	last := vehicleCount - 1
	bestCur := 0
	bestValue := math.Inf(1)
	for cur := 0; cur < curDim; cur++ {
		cell := dp[fullMask][last][cur]
		if math.IsInf(cell.value, 1) {
			continue
		}
		closing := d.Router.Route(frontierLocation(last, cur), view.Location(view.VehicleEndLocation(last)))
		total := cell.value + closing
		if total < bestValue {
			bestValue = total
			bestCur = cur
		}
	}

	routes := make([][]int, vehicleCount)
	for i := range routes {
		routes[i] = []int{}
	}

	mask, vehicle, cur := fullMask, last, bestCur
	for !(mask == 0 && vehicle == 0 && cur == 0) {
		cell := dp[mask][vehicle][cur]
		switch cell.kind {
		case extendTransition:
			stop := cur - 1
			routes[vehicle] = prependInt(routes[vehicle], stop)
			mask, cur = cell.prevMask, cell.prevCur
		case rolloverStopTransition:
			stop := cur - 1
			routes[vehicle] = prependInt(routes[vehicle], stop)
			mask, vehicle, cur = cell.prevMask, cell.prevVehicle, cell.prevCur
		case rolloverEmptyTransition:
			mask, vehicle, cur = cell.prevMask, cell.prevVehicle, cell.prevCur
		default:
			// Only the root state (0,0,0) has no recorded transition; the
			// loop guard ensures we never reach here otherwise.
			mask, vehicle, cur = 0, 0, 0
		}
	}

	return solution.FromRoutes(routes)
}

func prependInt(s []int, x int) []int {
	return append([]int{x}, s...)
}
