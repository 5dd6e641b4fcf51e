// Package api exposes the window manager over HTTP: inspect the active
// layout and its placements, and send layout messages.
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/ktsine/x-tilewm/internal/app"
	"github.com/ktsine/x-tilewm/internal/build"
	"github.com/ktsine/x-tilewm/internal/bus"
	"github.com/ktsine/x-tilewm/internal/layout"
	"github.com/ktsine/x-tilewm/pkg/chiext"
)

type PlacementDTO struct {
	Client uint32 `json:"client" doc:"X window identifier"`
	X      int32  `json:"x"`
	Y      int32  `json:"y"`
	W      uint32 `json:"w"`
	H      uint32 `json:"h"`
}

type GetLayoutOutput struct {
	Body struct {
		Workspace  string         `json:"workspace" doc:"Name of the active workspace"`
		Layout     string         `json:"layout" doc:"Name of the active layout"`
		Layouts    []string       `json:"layouts" doc:"Names of all available layouts"`
		Placements []PlacementDTO `json:"placements" doc:"Client rectangles from the last render"`
	}
}

type PostMessageInput struct {
	Body struct {
		Kind  string `json:"kind" enum:"expand-main,shrink-main,inc-main,mirror,rotate,unwrap,next-layout,set-layout" doc:"Message kind to route to the active layout"`
		Delta int    `json:"delta,omitempty" doc:"Main count delta for inc-main"`
		Name  string `json:"name,omitempty" doc:"Layout name for set-layout"`
	}
}

type PostMessageOutput struct {
	Status int
}

// Router builds the API on a chi router.
func Router(hub *bus.Hub[bus.LayoutCommand], status *app.Status) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chiext.Logger())

	api := humachi.New(r, huma.DefaultConfig("x-tilewm", build.Current.Version))

	huma.Get(api, "/api/layout", func(ctx context.Context, input *struct{}) (*GetLayoutOutput, error) {
		workspace, active, layouts, placements := status.Snapshot()

		out := &GetLayoutOutput{}
		out.Body.Workspace = workspace
		out.Body.Layout = active
		out.Body.Layouts = layouts
		out.Body.Placements = make([]PlacementDTO, len(placements))
		for i, p := range placements {
			out.Body.Placements[i] = PlacementDTO{
				Client: uint32(p.Client),
				X:      p.Rect.X,
				Y:      p.Rect.Y,
				W:      p.Rect.W,
				H:      p.Rect.H,
			}
		}

		return out, nil
	})

	huma.Post(api, "/api/layout/message", func(ctx context.Context, input *PostMessageInput) (*PostMessageOutput, error) {
		msg, err := messageFromKind(input.Body.Kind, input.Body.Delta, input.Body.Name)
		if err != nil {
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}

		hub.Publish(ctx, bus.LayoutCommand{Message: msg})

		return &PostMessageOutput{Status: http.StatusAccepted}, nil
	})

	return r
}

func messageFromKind(kind string, delta int, name string) (layout.Message, error) {
	switch kind {
	case "expand-main":
		return layout.ExpandMain{}, nil
	case "shrink-main":
		return layout.ShrinkMain{}, nil
	case "inc-main":
		return layout.IncMain{Delta: delta}, nil
	case "mirror":
		return layout.Mirror{}, nil
	case "rotate":
		return layout.Rotate{}, nil
	case "unwrap":
		return layout.Unwrap{}, nil
	case "next-layout":
		return layout.NextLayout{}, nil
	case "set-layout":
		if name == "" {
			return nil, fmt.Errorf("set-layout requires a name")
		}
		return layout.SetLayout{Name: name}, nil
	default:
		return nil, fmt.Errorf("unknown message kind %q", kind)
	}
}
