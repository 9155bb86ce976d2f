package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/arduino2nix/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/arduino2nix/internal/adapters/fs"      //nolint:depguard // Wired in app layer
	"go.trai.ch/arduino2nix/internal/adapters/index"   //nolint:depguard // Wired in app layer
	"go.trai.ch/arduino2nix/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/arduino2nix/internal/adapters/nix"     //nolint:depguard // Wired in app layer
	"go.trai.ch/arduino2nix/internal/adapters/shell"   //nolint:depguard // Wired in app layer
	"go.trai.ch/arduino2nix/internal/adapters/sketch"  //nolint:depguard // Wired in app layer
	"go.trai.ch/arduino2nix/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/arduino2nix/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.WorkspaceNodeID,
			sketch.NodeID,
			index.ResolverNodeID,
			fs.HasherNodeID,
			nix.RendererNodeID,
			shell.NodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	settings, err := graft.Dep[ports.SettingsLoader](ctx)
	if err != nil {
		return nil, err
	}

	workspace, err := graft.Dep[ports.Workspace](ctx)
	if err != nil {
		return nil, err
	}

	codec, err := graft.Dep[ports.ManifestCodec](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.IndexResolver](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := graft.Dep[ports.DescriptionRenderer](ctx)
	if err != nil {
		return nil, err
	}

	formatter, err := graft.Dep[ports.Formatter](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(settings, workspace, codec, resolver, hasher, renderer, formatter, w, log), nil
}
