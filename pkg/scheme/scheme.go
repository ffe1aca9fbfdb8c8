/*
Copyright 2019 Alexander Eldeib.
*/

// Package scheme holds the registry of every model package in this module.
package scheme

import (
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"

	"github.com/alexeldeib/azmodels/api/compute"
	"github.com/alexeldeib/azmodels/api/computeschedule"
	"github.com/alexeldeib/azmodels/pkg/registry"
)

// Registry knows every kind and enumeration declared under api/.
var Registry = registry.New()

func init() {
	utilruntime.Must(compute.AddToRegistry(Registry))
	utilruntime.Must(computeschedule.AddToRegistry(Registry))
}
