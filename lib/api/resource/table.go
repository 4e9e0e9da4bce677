package resource

import (
	"github.com/nvellon/hal"

	"github.com/tequdev/xahau-governance-hook-test/lib/governance"
)

type Table struct {
	info governance.TableInfo
}

func NewTable(info governance.TableInfo) *Table {
	return &Table{info: info}
}

func (t Table) GetMap() hal.Entry {
	members := make([]string, len(t.info.Members))
	for i, m := range t.info.Members {
		members[i] = m.Address()
	}

	return hal.Entry{
		"account":      t.info.Account.Address(),
		"primary":      t.info.IsPrimary,
		"setup":        t.info.IsSetup,
		"member_count": t.info.MemberCount,
		"members":      members,
		"quorum":       t.info.Policy,
	}
}

func (t Table) Resource() *hal.Resource {
	address := t.info.Account.Address()

	r := hal.NewResource(t, t.LinkSelf())
	r.AddLink("hooks", hal.NewLink(replaceVars(URLAccountHooks, "{id}", address)))
	r.AddLink("tallies", hal.NewLink(replaceVars(URLTopicTallies, "{id}", address)+"{?layer}", hal.LinkAttr{"templated": true}))
	r.AddLink("votes", hal.NewLink(replaceVars(URLTopicVotes, "{id}", address)+"{?layer}", hal.LinkAttr{"templated": true}))

	return r
}

func (t Table) LinkSelf() string {
	return replaceVars(URLAccountTable, "{id}", t.info.Account.Address())
}

type Tally struct {
	table  string
	record governance.TallyRecord
}

func NewTally(table string, record governance.TallyRecord) *Tally {
	return &Tally{table: table, record: record}
}

func (t Tally) GetMap() hal.Entry {
	return hal.Entry{
		"topic":        t.record.Topic.String(),
		"layer":        t.record.Layer,
		"value_suffix": t.record.ValueSuffix,
		"votes":        t.record.Votes,
	}
}

func (t Tally) Resource() *hal.Resource {
	return hal.NewResource(t, t.LinkSelf())
}

func (t Tally) LinkSelf() string {
	return replaceVars(URLTopicTallies, "{id}", t.table, "{topic}", t.record.Topic.String())
}

type Vote struct {
	table  string
	topic  governance.Topic
	record governance.VoteRecord
}

func NewVote(table string, topic governance.Topic, record governance.VoteRecord) *Vote {
	return &Vote{table: table, topic: topic, record: record}
}

func (v Vote) GetMap() hal.Entry {
	return hal.Entry{
		"topic":  v.topic.String(),
		"member": v.record.Member.Address(),
		"layer":  v.record.Layer,
		"value":  v.record.Value.String(),
	}
}

func (v Vote) Resource() *hal.Resource {
	return hal.NewResource(v, v.LinkSelf())
}

func (v Vote) LinkSelf() string {
	return replaceVars(URLTopicVotes, "{id}", v.table, "{topic}", v.topic.String())
}
