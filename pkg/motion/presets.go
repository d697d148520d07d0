package motion

import "github.com/gonewx/gallery/pkg/config"

// CascadeSpring 照片入场弹簧（stiffness 70, damping 12, mass 1）
var CascadeSpring = SpringConfig{
	Stiffness: config.CascadeSpringStiffness,
	Damping:   config.CascadeSpringDamping,
	Mass:      config.CascadeSpringMass,
}

// GestureSpring 倾斜、手势过渡与拖拽回弹使用的弹簧
var GestureSpring = SpringConfig{
	Stiffness: config.GestureSpringStiffness,
	Damping:   config.GestureSpringDamping,
	Mass:      config.GestureSpringMass,
}
