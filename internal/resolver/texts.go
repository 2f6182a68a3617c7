package resolver

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/pixil98/go-oceania/internal/game"
	"github.com/pixil98/go-oceania/internal/protocol"
	"github.com/pixil98/go-oceania/internal/storage"
)

// searchTexts hunts the current location for hidden forbidden literature.
// Looking is itself risky; the same safety-weighted surveillance check as
// searching applies.
func (r *Resolver) searchTexts(state *game.State, id uuid.UUID) (*Result, error) {
	c, err := r.character(state, id)
	if err != nil {
		return nil, err
	}
	loc, err := r.location(c)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	texts := r.world.TextsAt(c.Location)
	if len(texts) == 0 {
		res.narrate("You pry at the floorboards and the backs of drawers. If anything was ever hidden here, it is gone.")
	} else {
		ids := make([]string, 0, len(texts))
		for tid := range texts {
			ids = append(ids, string(tid))
		}
		sort.Strings(ids)
		res.ToSender = append(res.ToSender, &protocol.ForbiddenTextFound{Texts: ids})
		res.narrate("Your fingers close on paper where no paper should be. Something has been hidden here.")
	}

	if delta := r.surveillanceRisk(c, loc); delta > 0 {
		res.narrate("A floorboard creaks overhead. You freeze, listening, until the silence wins.")
	}

	return r.finish(c, res), nil
}

// readText studies a text hidden at the current location. Understanding
// scales with the text's difficulty; the suspicion cost scales with its
// risk rating.
func (r *Resolver) readText(state *game.State, id uuid.UUID, in *protocol.ReadText) (*Result, error) {
	c, err := r.character(state, id)
	if err != nil {
		return nil, err
	}

	textID := storage.Identifier(in.TextID)
	text := r.world.Text(textID)
	if text == nil || !text.HiddenAt(c.Location) {
		return nil, NewUserError("There is no such text here. Perhaps it was never written.")
	}

	understanding := text.Difficulty
	suspicion := 1 + r.rng.Intn(text.SuspicionRisk)

	c.Learn(text.Topic, understanding)
	c.Thoughtcrime = c.Thoughtcrime.Add(text.Difficulty / 2)
	c.Suspicion = c.Suspicion.Add(suspicion)

	res := &Result{}
	res.ToSender = append(res.ToSender, &protocol.ForbiddenTextContent{
		TextID:                string(textID),
		Title:                 text.Title,
		Content:               text.Content,
		Language:              text.Language,
		UnderstandingIncrease: understanding,
		SuspicionIncrease:     suspicion,
	})
	res.narrate(fmt.Sprintf("You read %q until the light fails. Ideas settle in you that cannot be unsettled.", text.Title))

	return r.finish(c, res), nil
}

// shareKnowledge broaches a forbidden topic with an NPC. Bolder approaches
// carry more of the idea across and more of the risk with it. Success rides
// on the NPC's disposition plus earned standing; a hostile NPC may denounce
// the speaker outright.
func (r *Resolver) shareKnowledge(state *game.State, id uuid.UUID, in *protocol.ShareKnowledge) (*Result, error) {
	c, err := r.character(state, id)
	if err != nil {
		return nil, err
	}

	if !in.Approach.Valid() {
		return nil, NewUserError(fmt.Sprintf("%q is no way to broach anything.", in.Approach))
	}
	if _, known := c.Knowledge[in.Topic]; !known {
		return nil, NewUserError(fmt.Sprintf("You know nothing of %q yourself.", in.Topic))
	}
	if c.Understanding(in.Topic) < 5 {
		return nil, NewUserError("You grasp the idea too poorly to pass it on. Read more first.")
	}

	npcID, npc, err := r.npcHere(c, in.TargetNpc)
	if err != nil {
		return nil, err
	}

	rank := in.Approach.Rank()
	disposition := npc.Trust + c.Trust(npcID)
	if disposition < 0 {
		disposition = 0
	}
	if disposition > 100 {
		disposition = 100
	}

	res := &Result{}
	if r.rng.Intn(100) < disposition {
		// The idea lands. Explaining it sharpens your own grasp, and
		// even a sympathetic ear is one more person who knows.
		c.Learn(in.Topic, 1+rank)
		c.Rebellion = c.Rebellion.Add(1 + rank)
		c.AddTrust(npcID, 2+rank)
		c.Suspicion = c.Suspicion.Add(rank)

		res.ToSender = append(res.ToSender, &protocol.KnowledgeShared{
			Success:        true,
			TargetReaction: fmt.Sprintf("%s listens without interrupting, eyes on the middle distance, and at the end gives the smallest of nods.", npc.Name),
			Consequence:    "The idea has passed between you. It cannot be taken back.",
		})
	} else {
		c.Suspicion = c.Suspicion.Add(5 + 4*rank)

		reaction := fmt.Sprintf("%s goes very still, then changes the subject with deliberate loudness.", npc.Name)
		consequence := "You said too much. You both know it."
		if npc.Trust+c.Trust(npcID) <= 0 {
			c.Suspicion = c.Suspicion.Add(10)
			c.AddTrust(npcID, -10)
			reaction = fmt.Sprintf("%s looks at you with open contempt and walks away at once.", npc.Name)
			consequence = "By evening, a report with your name on it is moving through the Ministry."
		}

		res.ToSender = append(res.ToSender, &protocol.KnowledgeShared{
			Success:        false,
			TargetReaction: reaction,
			Consequence:    consequence,
		})
	}

	return r.finish(c, res), nil
}
