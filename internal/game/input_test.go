package game

import "testing"

func TestFuseTurnIntent(t *testing.T) {
	cases := []struct {
		name          string
		key, mouse, a bool
		trigger       float64
		stickX        float64
		want          float64
	}{
		{name: "idle", want: 0},
		{name: "key", key: true, want: 1},
		{name: "mouse", mouse: true, want: 1},
		{name: "gamepad button", a: true, want: 1},
		{name: "analog trigger", trigger: 0.6, want: 0.6},
		{name: "trigger below threshold", trigger: 0.05, want: 0},
		{name: "stick left", stickX: -0.8, want: 0.8},
		{name: "stick right ignored", stickX: 0.8, want: 0},
		{name: "stick inside dead zone", stickX: -0.1, want: 0},
		{name: "strongest wins, not the sum", key: true, trigger: 0.6, stickX: -0.4, want: 1},
		{name: "analog beats weaker analog", trigger: 0.3, stickX: -0.7, want: 0.7},
	}
	for _, tc := range cases {
		got := fuseTurnIntent(tc.key, tc.mouse, tc.a, tc.trigger, tc.stickX)
		if got != tc.want {
			t.Errorf("%s: want %v, got %v", tc.name, tc.want, got)
		}
	}
}
