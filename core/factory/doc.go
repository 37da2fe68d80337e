// Package factory provides a small generic registry used to pick pluggable
// parts of the planner from configuration, such as the insertion policy of
// the schedule generator or the search strategy. A module is selected by a
// type string and tuned by a map of raw settings that the factory decodes
// into a typed struct.
//
// Example usage:
//
//	reg := factory.NewRegistry[search.Strategy]()
//	reg.Register("tabu", func(conf map[string]any) (search.Strategy, error) {
//	    var c search.TabuConfig
//	    if err := factory.Decode(conf, &c); err != nil {
//	        return nil, err
//	    }
//	    return search.NewTabu(c), nil
//	})
//	s, err := reg.Create(factory.ModuleConfig{Type: "tabu", Conf: map[string]any{"tabu_list_size": 50}})
package factory
