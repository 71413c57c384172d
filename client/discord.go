package client

import (
	"fmt"
	"log"

	"epochrank/repository"

	"github.com/bwmarrin/discordgo"
)

// DiscordNotifier posts operator warnings to the guild's Discord channel.
type DiscordNotifier struct {
	session   *discordgo.Session
	channelId string
}

func NewDiscordNotifier(botToken string, channelId string) (*DiscordNotifier, error) {
	session, err := discordgo.New("Bot " + botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %v", err)
	}
	return &DiscordNotifier{
		session:   session,
		channelId: channelId,
	}, nil
}

func (n *DiscordNotifier) NotifyThresholdReached(item *repository.Item) error {
	message := fmt.Sprintf("⚠️ **%s** has reached %d deliveries (threshold %d). Consider resetting its ranking.",
		item.Name, item.DeliveryCount, item.ResetThreshold)

	_, err := n.session.ChannelMessageSend(n.channelId, message)
	if err != nil {
		log.Printf("Failed to send discord message: %v", err)
		return err
	}
	return nil
}
